package winprob_test

import (
	"errors"
	"testing"

	"github.com/okian/rankdrift/internal/domain/winprob"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBinnedModel(t *testing.T) {
	Convey("Given the binned win model", t, func() {
		m := winprob.NewBinned()

		Convey("Then gap bins should map to the fixed base probabilities", func() {
			cases := []struct {
				a, b int
				want float64
			}{
				{10, 15, 0.50},  // gap 5
				{10, 16, 0.65},  // gap 6
				{10, 20, 0.65},  // gap 10
				{10, 21, 0.75},  // gap 11
				{10, 25, 0.75},  // gap 15
				{10, 26, 0.85},  // gap 16
				{10, 35, 0.85},  // gap 25
				{10, 36, 0.95},  // gap 26
				{10, 60, 0.95},  // gap 50
				{10, 61, 0.98},  // gap 51
				{10, 110, 0.98}, // gap 100
				{10, 111, 0.99}, // gap 101
			}
			for _, c := range cases {
				So(m.WinProbability(c.a, c.b), ShouldEqual, c.want)
			}
		})

		Convey("Then the worse side should get the complement", func() {
			So(m.WinProbability(20, 10), ShouldEqual, 1-0.65)
			So(m.WinProbability(111, 10), ShouldEqual, 1-0.99)
		})

		Convey("Then all pairs should be complementary", func() {
			pairs := [][2]int{{1, 2}, {1, 6}, {3, 40}, {5, 120}, {134, 1}, {60, 61}}
			for _, p := range pairs {
				sum := m.WinProbability(p[0], p[1]) + m.WinProbability(p[1], p[0])
				So(sum, ShouldAlmostEqual, 1.0, 1e-12)
			}
		})
	})
}

func TestGaussianModel(t *testing.T) {
	Convey("Given a gaussian win model", t, func() {
		m, err := winprob.NewGaussian(winprob.DefaultSigma)
		So(err, ShouldBeNil)

		Convey("Then an even matchup should be a coin flip", func() {
			So(m.WinProbability(10, 10), ShouldAlmostEqual, 0.5, 1e-9)
		})

		Convey("Then the better side should be favored", func() {
			p := m.WinProbability(1, 50)
			So(p, ShouldBeGreaterThan, 0.9)
		})

		Convey("Then all pairs should be complementary", func() {
			pairs := [][2]int{{1, 2}, {3, 40}, {5, 120}, {134, 1}}
			for _, pr := range pairs {
				sum := m.WinProbability(pr[0], pr[1]) + m.WinProbability(pr[1], pr[0])
				So(sum, ShouldAlmostEqual, 1.0, 1e-9)
			}
		})

		Convey("When sigma is not positive", func() {
			_, err := winprob.NewGaussian(0)

			Convey("Then construction should fail", func() {
				So(errors.Is(err, winprob.ErrInvalidSigma), ShouldBeTrue)
			})
		})
	})
}

package render_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/season"
	"github.com/okian/rankdrift/internal/domain/stats"
	"github.com/okian/rankdrift/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTable(t *testing.T) {
	Convey("Given a two-week metric series", t, func() {
		s := stats.Series{
			AvgDiff:    []float64{2.5, 1.25},
			MaxDiff:    []float64{4, 3},
			MaxRise:    []float64{0, 3},
			MaxFall:    []float64{0, 2},
			AvgDiffTop: []float64{1.5, 0.75},
			MaxDiffTop: []float64{3, 2},
		}

		Convey("When rendered", func() {
			var buf bytes.Buffer
			So(render.Table(&buf, s, 100), ShouldBeNil)
			out := buf.String()

			Convey("Then the table should carry the run count and headers", func() {
				So(out, ShouldContainSubstring, "over 100 runs")
				So(out, ShouldContainSubstring, "AvgDiff")
				So(out, ShouldContainSubstring, "MaxDiffTop")
			})

			Convey("Then every week should be listed with two decimals", func() {
				So(out, ShouldContainSubstring, "W0")
				So(out, ShouldContainSubstring, "W1")
				So(out, ShouldContainSubstring, "2.50")
				So(out, ShouldContainSubstring, "1.25")
			})
		})
	})
}

func TestTrajectoryCSV(t *testing.T) {
	Convey("Given a simulated season", t, func() {
		rule, err := policy.New(policy.WithTierSizes([]int{4, 4, 4}))
		So(err, ShouldBeNil)

		sim, err := season.New(
			season.WithNumTeams(12),
			season.WithNumWeeks(3),
			season.WithRule(rule),
			season.WithSeed(6),
		)
		So(err, ShouldBeNil)

		snaps, err := sim.Run(context.Background())
		So(err, ShouldBeNil)

		Convey("When the trajectory is exported", func() {
			var buf bytes.Buffer
			So(render.TrajectoryCSV(&buf, snaps, rule), ShouldBeNil)

			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			So(err, ShouldBeNil)

			Convey("Then there should be a header plus one row per team", func() {
				So(records, ShouldHaveLength, 13)
				So(records[0], ShouldResemble, []string{"team", "true_rank", "tier", "w0", "w1", "w2", "w3"})
			})

			Convey("Then rows should be ordered by true rank with tiers attached", func() {
				So(records[1][0], ShouldEqual, "Team #1")
				So(records[1][2], ShouldEqual, "1")
				So(records[12][0], ShouldEqual, "Team #12")
				So(records[12][2], ShouldEqual, "3")
			})
		})

		Convey("When there are no snapshots", func() {
			var buf bytes.Buffer
			err := render.TrajectoryCSV(&buf, nil, rule)

			Convey("Then rendering should fail", func() {
				So(errors.Is(err, render.ErrNothingToRender), ShouldBeTrue)
			})
		})
	})
}

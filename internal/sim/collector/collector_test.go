package collector_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/okian/rankdrift/internal/domain/stats"
	"github.com/okian/rankdrift/internal/sim/collector"
	. "github.com/smartystreets/goconvey/convey"
)

func seriesOf(v float64) stats.Series {
	return stats.Series{
		AvgDiff:    []float64{v},
		MaxDiff:    []float64{v},
		MaxRise:    []float64{v},
		MaxFall:    []float64{v},
		AvgDiffTop: []float64{v},
		MaxDiffTop: []float64{v},
	}
}

func TestCollector(t *testing.T) {
	Convey("Given a collector for two runs", t, func() {
		c, err := collector.New(2)
		So(err, ShouldBeNil)

		Convey("When runs arrive out of order", func() {
			So(c.Add(1, seriesOf(4)), ShouldBeNil)
			So(c.Complete(), ShouldBeFalse)
			So(c.Add(0, seriesOf(2)), ShouldBeNil)

			Convey("Then the batch should complete and average", func() {
				So(c.Complete(), ShouldBeTrue)
				m, err := c.Mean()
				So(err, ShouldBeNil)
				So(m.AvgDiff[0], ShouldEqual, 3.0)
			})
		})

		Convey("When a run is added twice", func() {
			So(c.Add(0, seriesOf(1)), ShouldBeNil)

			Convey("Then the duplicate should be rejected", func() {
				So(errors.Is(c.Add(0, seriesOf(1)), collector.ErrDuplicateRun), ShouldBeTrue)
			})
		})

		Convey("When a run index is out of range", func() {
			So(errors.Is(c.Add(5, seriesOf(1)), collector.ErrRunOutOfRange), ShouldBeTrue)
		})

		Convey("When the mean is requested early", func() {
			So(c.Add(0, seriesOf(1)), ShouldBeNil)

			Convey("Then the incomplete batch should be reported", func() {
				_, err := c.Mean()
				So(errors.Is(err, collector.ErrIncomplete), ShouldBeTrue)
			})
		})
	})

	Convey("Given an invalid run count", t, func() {
		_, err := collector.New(0)
		So(errors.Is(err, collector.ErrInvalidRunCount), ShouldBeTrue)
	})

	Convey("Given concurrent writers", t, func() {
		const n = 64
		c, err := collector.New(n)
		So(err, ShouldBeNil)

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(run int) {
				defer wg.Done()
				_ = c.Add(run, seriesOf(float64(run)))
			}(i)
		}
		wg.Wait()

		Convey("Then every run should be collected exactly once", func() {
			So(c.Count(), ShouldEqual, n)
			m, err := c.Mean()
			So(err, ShouldBeNil)
			So(m.AvgDiff[0], ShouldEqual, float64(n-1)/2.0)
		})
	})
}

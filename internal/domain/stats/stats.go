// Package stats turns a season's snapshot sequence into per-week error
// and movement metrics, and averages those metrics across runs.
package stats

import (
	"fmt"

	"github.com/okian/rankdrift/internal/domain/model"
)

// DefaultTopWindow is the committee's published top-25 slice.
const DefaultTopWindow = 25

// Series holds the six per-week metric sequences for one season (or the
// cross-run mean of many). All slices share length numWeeks+1, indexed
// by week with week 0 the preseason.
type Series struct {
	AvgDiff    []float64 // mean |committee - true| over all teams
	MaxDiff    []float64 // max |committee - true| over all teams
	MaxRise    []float64 // largest single-team rank gain vs prior week
	MaxFall    []float64 // largest single-team rank drop vs prior week
	AvgDiffTop []float64 // mean |committee - true| over the top window
	MaxDiffTop []float64 // max |committee - true| over the top window
}

// Weeks returns the number of week entries in the series.
func (s Series) Weeks() int {
	return len(s.AvgDiff)
}

func newSeries(weeks int) Series {
	return Series{
		AvgDiff:    make([]float64, weeks),
		MaxDiff:    make([]float64, weeks),
		MaxRise:    make([]float64, weeks),
		MaxFall:    make([]float64, weeks),
		AvgDiffTop: make([]float64, weeks),
		MaxDiffTop: make([]float64, weeks),
	}
}

// Compute derives the six metric sequences from one season's snapshots.
// topWindow caps the restricted metrics; rosters smaller than the window
// use every team. Rise and fall are zero at week 0 by definition.
func Compute(snapshots []model.Snapshot, topWindow int) (Series, error) {
	if len(snapshots) == 0 {
		return Series{}, ErrNoSnapshots
	}
	if topWindow <= 0 {
		return Series{}, fmt.Errorf("%w: top window %d", ErrInvalidWindow, topWindow)
	}

	out := newSeries(len(snapshots))

	for w, snap := range snapshots {
		sum, max := 0, 0
		for _, team := range snap {
			d := team.RankError()
			sum += d
			if d > max {
				max = d
			}
		}
		out.AvgDiff[w] = float64(sum) / float64(len(snap))
		out.MaxDiff[w] = float64(max)

		window := topWindow
		if len(snap) < window {
			window = len(snap)
		}
		sumTop, maxTop := 0, 0
		for _, team := range snap[:window] {
			d := team.RankError()
			sumTop += d
			if d > maxTop {
				maxTop = d
			}
		}
		out.AvgDiffTop[w] = float64(sumTop) / float64(window)
		out.MaxDiffTop[w] = float64(maxTop)
	}

	for w := 1; w < len(snapshots); w++ {
		prev := make(map[int]int, len(snapshots[w-1]))
		for _, team := range snapshots[w-1] {
			prev[team.ID] = team.CommitteeRank
		}

		rise, fall := 0, 0
		for _, team := range snapshots[w] {
			old, ok := prev[team.ID]
			if !ok {
				return Series{}, fmt.Errorf("%w: team %d missing from week %d", ErrNoSnapshots, team.ID, w-1)
			}
			if gain := old - team.CommitteeRank; gain > rise {
				rise = gain
			}
			if drop := team.CommitteeRank - old; drop > fall {
				fall = drop
			}
		}
		out.MaxRise[w] = float64(rise)
		out.MaxFall[w] = float64(fall)
	}

	return out, nil
}

// Mean averages many runs' series element-wise. Every run must cover the
// same number of weeks.
func Mean(runs []Series) (Series, error) {
	if len(runs) == 0 {
		return Series{}, ErrNoRuns
	}
	weeks := runs[0].Weeks()
	for i, run := range runs {
		if run.Weeks() != weeks {
			return Series{}, fmt.Errorf("%w: run %d has %d weeks, want %d", ErrShapeMismatch, i, run.Weeks(), weeks)
		}
	}

	out := newSeries(weeks)
	n := float64(len(runs))
	for w := 0; w < weeks; w++ {
		for _, run := range runs {
			out.AvgDiff[w] += run.AvgDiff[w]
			out.MaxDiff[w] += run.MaxDiff[w]
			out.MaxRise[w] += run.MaxRise[w]
			out.MaxFall[w] += run.MaxFall[w]
			out.AvgDiffTop[w] += run.AvgDiffTop[w]
			out.MaxDiffTop[w] += run.MaxDiffTop[w]
		}
		out.AvgDiff[w] /= n
		out.MaxDiff[w] /= n
		out.MaxRise[w] /= n
		out.MaxFall[w] /= n
		out.AvgDiffTop[w] /= n
		out.MaxDiffTop[w] /= n
	}

	return out, nil
}

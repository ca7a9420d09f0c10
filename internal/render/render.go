// Package render formats simulation output for the console and for
// external charting tools. It consumes snapshots and metric series only;
// nothing here feeds back into the simulation.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/okian/rankdrift/internal/domain/model"
	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/stats"
)

// Table writes the weekly averages as an aligned console table.
func Table(w io.Writer, s stats.Series, numRuns int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "Weekly averages over %d runs\n", numRuns); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "Week\tAvgDiff\tMaxDiff\tMaxRise\tMaxFall\tAvgDiffTop\tMaxDiffTop\t"); err != nil {
		return err
	}
	for week := 0; week < s.Weeks(); week++ {
		if _, err := fmt.Fprintf(tw, "W%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			week,
			s.AvgDiff[week],
			s.MaxDiff[week],
			s.MaxRise[week],
			s.MaxFall[week],
			s.AvgDiffTop[week],
			s.MaxDiffTop[week],
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// TrajectoryCSV writes one season's per-team committee rank trajectory.
// Each row is a team with its tier (from the rule's tier sizes) followed
// by its committee rank at every week; the header names the weeks. The
// CSV is the data contract for external rank-trajectory charts.
func TrajectoryCSV(w io.Writer, snapshots []model.Snapshot, rule *policy.Rule) error {
	if len(snapshots) == 0 {
		return ErrNothingToRender
	}

	// Committee rank per team per week, keyed by team id.
	weeks := len(snapshots)
	ranks := make(map[int][]int, len(snapshots[0]))
	names := make(map[int]string, len(snapshots[0]))
	trueRanks := make(map[int]int, len(snapshots[0]))
	for week, snap := range snapshots {
		for _, team := range snap {
			if _, ok := ranks[team.ID]; !ok {
				ranks[team.ID] = make([]int, weeks)
				names[team.ID] = team.Name
				trueRanks[team.ID] = team.TrueRank
			}
			ranks[team.ID][week] = team.CommitteeRank
		}
	}

	ids := make([]int, 0, len(ranks))
	for id := range ranks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return trueRanks[ids[a]] < trueRanks[ids[b]] })

	cw := csv.NewWriter(w)
	header := []string{"team", "true_rank", "tier"}
	for week := 0; week < weeks; week++ {
		header = append(header, fmt.Sprintf("w%d", week))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, id := range ids {
		row := []string{
			names[id],
			strconv.Itoa(trueRanks[id]),
			strconv.Itoa(rule.TierOf(trueRanks[id]) + 1),
		}
		for _, rank := range ranks[id] {
			row = append(row, strconv.Itoa(rank))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

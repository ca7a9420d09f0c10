// Package model contains the domain types shared between the season
// simulator, the statistics aggregator, and the presentation layer.
package model

import "fmt"

// Team is one entrant in a simulated season.
//
// ID and TrueRank never change once the roster is built. CommitteeRank
// and SeasonPoints are rewritten by the simulator every week.
type Team struct {
	ID            int    // identity, 1..N
	Name          string // display name, "Team #<id>"
	TrueRank      int    // fixed ability rank, 1 = best
	CommitteeRank int    // current public rank, 1 = best
	SeasonPoints  int    // accumulated committee points
}

// NewTeam builds a team whose true rank equals its identity.
func NewTeam(id int) Team {
	return Team{
		ID:       id,
		Name:     fmt.Sprintf("Team #%d", id),
		TrueRank: id,
	}
}

// RankError is the absolute difference between the committee's view of
// the team and its true ability.
func (t Team) RankError() int {
	d := t.CommitteeRank - t.TrueRank
	if d < 0 {
		return -d
	}
	return d
}

// Snapshot is the state of every team at the end of one week, ordered by
// committee rank ascending. A snapshot is a full value copy of the
// roster; it holds no references back to the live season state and must
// never be mutated after construction.
type Snapshot []Team

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// Validate checks the permutation invariant: committee ranks and true
// ranks must each cover 1..N exactly once, and the snapshot must be
// ordered by committee rank. A failure indicates a simulator defect.
func (s Snapshot) Validate() error {
	n := len(s)
	committee := make([]bool, n+1)
	truth := make([]bool, n+1)
	for i, t := range s {
		if t.CommitteeRank != i+1 {
			return fmt.Errorf("%w: position %d holds committee rank %d", ErrInvariantViolated, i, t.CommitteeRank)
		}
		if t.CommitteeRank < 1 || t.CommitteeRank > n || committee[t.CommitteeRank] {
			return fmt.Errorf("%w: committee rank %d duplicated or out of range", ErrInvariantViolated, t.CommitteeRank)
		}
		if t.TrueRank < 1 || t.TrueRank > n || truth[t.TrueRank] {
			return fmt.Errorf("%w: true rank %d duplicated or out of range", ErrInvariantViolated, t.TrueRank)
		}
		committee[t.CommitteeRank] = true
		truth[t.TrueRank] = true
	}
	return nil
}

// Package season runs one simulated season: preseason assignment, the
// weekly matchup loop, points-based re-ranking, and per-week snapshots.
package season

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/okian/rankdrift/internal/domain/model"
	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/winprob"
)

// Default season dimensions, matching the original 134-team FBS model.
const (
	DefaultNumTeams = 134
	DefaultNumWeeks = 12
)

// Simulator owns the live roster of a single season. It is not safe for
// concurrent use; run one Simulator per goroutine.
type Simulator struct {
	numTeams int
	numWeeks int
	rule     *policy.Rule
	model    winprob.Model
	seed     int64
	rng      *rand.Rand
}

// New validates the configuration and builds a Simulator. All
// configuration failures surface here, before any simulation work.
func New(opts ...Option) (*Simulator, error) {
	s := &Simulator{
		numTeams: DefaultNumTeams,
		numWeeks: DefaultNumWeeks,
		model:    winprob.NewBinned(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rule == nil {
		rule, err := policy.New()
		if err != nil {
			return nil, err
		}
		s.rule = rule
	}

	if s.numTeams < 2 || s.numTeams%2 != 0 {
		return nil, fmt.Errorf("%w: team count %d must be even and at least 2", ErrInvalidConfig, s.numTeams)
	}
	if s.numWeeks < 1 {
		return nil, fmt.Errorf("%w: week count %d must be positive", ErrInvalidConfig, s.numWeeks)
	}
	if err := s.rule.Validate(s.numTeams); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // simulation randomness, not security

	return s, nil
}

// Rule exposes the configured policy pair, used by presentation code for
// tier classification.
func (s *Simulator) Rule() *policy.Rule { return s.rule }

// Run plays the whole season and returns numWeeks+1 snapshots, week 0
// (preseason) first. The context is honored between weeks.
func (s *Simulator) Run(ctx context.Context) ([]model.Snapshot, error) {
	teams := make([]model.Team, s.numTeams)
	for i := range teams {
		teams[i] = model.NewTeam(i + 1)
	}
	s.rule.Seed(teams, s.rng)

	// order holds team indices sorted by current committee rank; it is
	// the tie-break memory carried from week to week.
	order := make([]int, s.numTeams)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return teams[order[a]].CommitteeRank < teams[order[b]].CommitteeRank
	})

	snapshots := make([]model.Snapshot, 0, s.numWeeks+1)
	snap := takeSnapshot(teams, order)
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("preseason snapshot: %w", err)
	}
	snapshots = append(snapshots, snap)

	for week := 1; week <= s.numWeeks; week++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.playWeek(teams)
		order = rerank(teams, order)

		snap = takeSnapshot(teams, order)
		if err := snap.Validate(); err != nil {
			return nil, fmt.Errorf("week %d snapshot: %w", week, err)
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// playWeek pairs the full roster at random and scores every matchup.
// Committee ranks are read as frozen from last week; only points change.
func (s *Simulator) playWeek(teams []model.Team) {
	lastRank := make([]int, len(teams))
	for i := range teams {
		lastRank[i] = teams[i].CommitteeRank
	}

	perm := s.rng.Perm(len(teams))
	for i := 0; i < len(perm); i += 2 {
		a, b := perm[i], perm[i+1]

		pA := s.model.WinProbability(teams[a].TrueRank, teams[b].TrueRank)
		aWins := s.rng.Float64() < pA

		teams[a].SeasonPoints += s.rule.Award(lastRank[a], lastRank[b], aWins)
		teams[b].SeasonPoints += s.rule.Award(lastRank[b], lastRank[a], !aWins)
	}
}

// rerank derives the new committee order: points descending, equal-point
// teams keeping last week's relative order. Committee ranks are assigned
// in place from the resulting positions.
func rerank(teams []model.Team, prevOrder []int) []int {
	next := make([]int, len(prevOrder))
	copy(next, prevOrder)
	sort.SliceStable(next, func(a, b int) bool {
		return teams[next[a]].SeasonPoints > teams[next[b]].SeasonPoints
	})
	for pos, idx := range next {
		teams[idx].CommitteeRank = pos + 1
	}
	return next
}

// takeSnapshot copies every team record in committee order.
func takeSnapshot(teams []model.Team, order []int) model.Snapshot {
	snap := make(model.Snapshot, len(order))
	for pos, idx := range order {
		snap[pos] = teams[idx]
	}
	return snap
}

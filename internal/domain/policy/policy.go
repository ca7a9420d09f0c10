// Package policy defines the two configurable axes of the committee
// model: how preseason committee ranks are assigned, and how many points
// a matchup outcome is worth.
package policy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/okian/rankdrift/internal/domain/model"
)

// Preseason selects the preseason committee-rank assignment rule.
type Preseason string

// Scoring selects the points table applied to matchup outcomes.
type Scoring string

const (
	// PreseasonTiered partitions teams into contiguous ability tiers,
	// shuffles within each tier, and ranks the tiers in order.
	PreseasonTiered Preseason = "tiered"
	// PreseasonInverted ranks the best true team dead last.
	PreseasonInverted Preseason = "inverted"

	// ScoringStandard is the 5/4/3 win, 3/2/1/0 loss table.
	ScoringStandard Scoring = "standard"
	// ScoringHarsh is the 9/8/7/6 win, 4/2/1/0 loss table.
	ScoringHarsh Scoring = "harsh"
)

// Rank-difference bin edges shared by the points tables. "Below" means a
// numerically larger committee rank than one's own.
const (
	nearBelow = 7  // up to 7 spots below
	midBelow  = 24 // 8..24 spots below

	// The harsh table narrows the near-loss bin to 5 while keeping the
	// near-win bin at 7. The asymmetry is deliberate; do not unify.
	harshNearLoss = 5
)

// ParsePreseason maps a configuration string to a Preseason.
func ParsePreseason(s string) (Preseason, error) {
	switch Preseason(s) {
	case PreseasonTiered, PreseasonInverted:
		return Preseason(s), nil
	}
	return "", fmt.Errorf("%w: preseason %q", ErrUnknownPolicy, s)
}

// ParseScoring maps a configuration string to a Scoring.
func ParseScoring(s string) (Scoring, error) {
	switch Scoring(s) {
	case ScoringStandard, ScoringHarsh:
		return Scoring(s), nil
	}
	return "", fmt.Errorf("%w: scoring %q", ErrUnknownPolicy, s)
}

// Rule bundles one preseason policy and one scoring policy, plus the
// tier sizes used by the tiered preseason.
type Rule struct {
	preseason Preseason
	scoring   Scoring
	tiers     []int
}

// DefaultTierSizes is the 34/50/50 split of the original 134-team model.
func DefaultTierSizes() []int {
	return []int{34, 50, 50}
}

// New builds a Rule from options. Defaults: tiered preseason, standard
// scoring, 34/50/50 tiers.
func New(opts ...Option) (*Rule, error) {
	r := &Rule{
		preseason: PreseasonTiered,
		scoring:   ScoringStandard,
		tiers:     DefaultTierSizes(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if _, err := ParsePreseason(string(r.preseason)); err != nil {
		return nil, err
	}
	if _, err := ParseScoring(string(r.scoring)); err != nil {
		return nil, err
	}
	return r, nil
}

// Preseason reports the configured preseason policy.
func (r *Rule) Preseason() Preseason { return r.preseason }

// Scoring reports the configured scoring policy.
func (r *Rule) Scoring() Scoring { return r.scoring }

// TierSizes returns a copy of the configured tier sizes.
func (r *Rule) TierSizes() []int {
	out := make([]int, len(r.tiers))
	copy(out, r.tiers)
	return out
}

// Validate checks that the rule can seed a roster of numTeams teams.
// Tier sizes must be positive and partition 1..numTeams exactly.
func (r *Rule) Validate(numTeams int) error {
	if r.preseason != PreseasonTiered {
		return nil
	}
	if len(r.tiers) == 0 {
		return fmt.Errorf("%w: tiered preseason requires tier sizes", ErrInvalidRule)
	}
	sum := 0
	for i, size := range r.tiers {
		if size <= 0 {
			return fmt.Errorf("%w: tier %d has non-positive size %d", ErrInvalidRule, i, size)
		}
		sum += size
	}
	if sum != numTeams {
		return fmt.Errorf("%w: tier sizes sum to %d, want %d", ErrInvalidRule, sum, numTeams)
	}
	return nil
}

// TierOf returns the zero-based tier index for a true rank, or 0 when
// the rule is not tiered.
func (r *Rule) TierOf(trueRank int) int {
	if r.preseason != PreseasonTiered {
		return 0
	}
	upper := 0
	for i, size := range r.tiers {
		upper += size
		if trueRank <= upper {
			return i
		}
	}
	return len(r.tiers) - 1
}

// Seed assigns preseason committee ranks to every team in place.
// The caller validates the rule against len(teams) beforehand.
func (r *Rule) Seed(teams []model.Team, rng *rand.Rand) {
	switch r.preseason {
	case PreseasonInverted:
		n := len(teams)
		for i := range teams {
			teams[i].CommitteeRank = n - teams[i].TrueRank + 1
		}
	case PreseasonTiered:
		// Order team indices by true rank, shuffle inside each tier,
		// then rank the concatenation.
		order := make([]int, len(teams))
		for i := range teams {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return teams[order[a]].TrueRank < teams[order[b]].TrueRank
		})
		start := 0
		for _, size := range r.tiers {
			tier := order[start : start+size]
			rng.Shuffle(len(tier), func(a, b int) {
				tier[a], tier[b] = tier[b], tier[a]
			})
			start += size
		}
		for pos, idx := range order {
			teams[idx].CommitteeRank = pos + 1
		}
	}
}

// Award returns the points earned by a team whose committee rank was
// ownRank last week, against an opponent ranked oppRank last week.
// Ranks are read from the prior week's standings, never mid-week.
func (r *Rule) Award(ownRank, oppRank int, won bool) int {
	if r.scoring == ScoringHarsh {
		return harshPoints(ownRank, oppRank, won)
	}
	return standardPoints(ownRank, oppRank, won)
}

func standardPoints(ownRank, oppRank int, won bool) int {
	diff := oppRank - ownRank
	if won {
		switch {
		case oppRank < ownRank || diff <= nearBelow:
			return 5
		case diff <= midBelow:
			return 4
		default:
			return 3
		}
	}
	if oppRank < ownRank {
		return 3
	}
	switch {
	case diff <= nearBelow:
		return 2
	case diff <= midBelow:
		return 1
	default:
		return 0
	}
}

func harshPoints(ownRank, oppRank int, won bool) int {
	diff := oppRank - ownRank
	if won {
		switch {
		case oppRank < ownRank:
			return 9
		case diff <= nearBelow:
			return 8
		case diff <= midBelow:
			return 7
		default:
			return 6
		}
	}
	if oppRank < ownRank {
		return 4
	}
	switch {
	case diff <= harshNearLoss:
		return 2
	case diff <= midBelow:
		return 1
	default:
		return 0
	}
}

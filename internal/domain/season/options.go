package season

import (
	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/winprob"
)

// Option applies a configuration option to the Simulator.
type Option func(*Simulator)

// WithNumTeams sets the roster size. Must be even.
func WithNumTeams(n int) Option {
	return func(s *Simulator) {
		if n != 0 {
			s.numTeams = n
		}
	}
}

// WithNumWeeks sets how many weeks are played after the preseason.
func WithNumWeeks(n int) Option {
	return func(s *Simulator) {
		if n != 0 {
			s.numWeeks = n
		}
	}
}

// WithRule sets the preseason and scoring policy pair.
func WithRule(r *policy.Rule) Option {
	return func(s *Simulator) {
		if r != nil {
			s.rule = r
		}
	}
}

// WithWinModel sets the win probability model.
func WithWinModel(m winprob.Model) Option {
	return func(s *Simulator) {
		if m != nil {
			s.model = m
		}
	}
}

// WithSeed fixes the random stream. Zero keeps the time-derived default,
// making the season non-deterministic.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

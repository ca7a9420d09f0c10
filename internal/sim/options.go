package sim

import (
	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/winprob"
	"github.com/okian/rankdrift/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRuns sets how many independent seasons the batch plays.
func WithRuns(n int) Option {
	return func(s *Service) {
		if n != 0 {
			s.numRuns = n
		}
	}
}

// WithNumTeams sets the roster size for every run.
func WithNumTeams(n int) Option {
	return func(s *Service) {
		if n != 0 {
			s.numTeams = n
		}
	}
}

// WithNumWeeks sets the season length for every run.
func WithNumWeeks(n int) Option {
	return func(s *Service) {
		if n != 0 {
			s.numWeeks = n
		}
	}
}

// WithRule sets the preseason and scoring policy pair.
func WithRule(r *policy.Rule) Option {
	return func(s *Service) {
		if r != nil {
			s.rule = r
		}
	}
}

// WithWinModel sets the win probability model.
func WithWinModel(m winprob.Model) Option {
	return func(s *Service) {
		if m != nil {
			s.model = m
		}
	}
}

// WithSeed fixes the base seed of the batch. Zero keeps the
// time-derived default.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithWorkerCount sets the number of concurrent run workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithTopWindow sets the size of the restricted top slice.
func WithTopWindow(n int) Option {
	return func(s *Service) {
		if n != 0 {
			s.topWindow = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// Package config defines simulator configuration and loading.
//
// Conventions follow the rest of the module: defaults first, functional
// layering on top, sentinel errors for classification, and every loading
// function taking context.Context first.
package config

import (
	"context"
	"fmt"
	"runtime"

	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/winprob"
)

// Win model names accepted in configuration.
const (
	WinModelBinned   = "binned"
	WinModelGaussian = "gaussian"
)

// Config contains the whole batch configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr is the optional Prometheus listen address, e.g.
	// ":9090". Empty disables the metrics endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// NumTeams is the roster size. Must be even; every team plays weekly.
	NumTeams int `koanf:"num_teams"`

	// NumWeeks is the number of played weeks after the preseason.
	NumWeeks int `koanf:"num_weeks"`

	// NumRuns is how many independent seasons are averaged.
	NumRuns int `koanf:"num_runs"`

	// Workers caps concurrent season runs.
	Workers int `koanf:"workers"`

	// Seed fixes the batch's random streams; 0 means non-deterministic.
	Seed int64 `koanf:"seed"`

	// Preseason selects the initial committee bias: tiered or inverted.
	Preseason string `koanf:"preseason"`

	// Scoring selects the points table: standard or harsh.
	Scoring string `koanf:"scoring"`

	// TierSizes are the contiguous tier sizes for the tiered preseason.
	TierSizes []int `koanf:"tier_sizes"`

	// WinModel selects the win probability model: binned or gaussian.
	WinModel string `koanf:"win_model"`

	// GaussianSigma is the spread of the gaussian win model.
	GaussianSigma float64 `koanf:"gaussian_sigma"`

	// TopWindow is the size of the restricted top slice in the stats.
	TopWindow int `koanf:"top_window"`
}

// New returns the default configuration: the original 134-team,
// 12-week, 100-run tiered/standard model.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:      "info",
		MetricsAddr:   "",
		NumTeams:      134,
		NumWeeks:      12,
		NumRuns:       100,
		Workers:       runtime.NumCPU(),
		Seed:          0,
		Preseason:     string(policy.PreseasonTiered),
		Scoring:       string(policy.ScoringStandard),
		TierSizes:     policy.DefaultTierSizes(),
		WinModel:      WinModelBinned,
		GaussianSigma: winprob.DefaultSigma,
		TopWindow:     25,
	}
}

// Validate classifies configuration problems before any simulation work.
func (c *Config) Validate() error {
	if c.NumTeams < 2 || c.NumTeams%2 != 0 {
		return fmt.Errorf("%w: num_teams %d must be even and at least 2", ErrInvalidConfig, c.NumTeams)
	}
	if c.NumWeeks < 1 {
		return fmt.Errorf("%w: num_weeks %d must be positive", ErrInvalidConfig, c.NumWeeks)
	}
	if c.NumRuns < 1 {
		return fmt.Errorf("%w: num_runs %d must be positive", ErrInvalidConfig, c.NumRuns)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidConfig, c.Workers)
	}
	if c.TopWindow < 1 {
		return fmt.Errorf("%w: top_window %d must be positive", ErrInvalidConfig, c.TopWindow)
	}

	rule, err := c.Rule()
	if err != nil {
		return err
	}
	if err := rule.Validate(c.NumTeams); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Model(); err != nil {
		return err
	}
	return nil
}

// Rule builds the policy pair described by the configuration.
func (c *Config) Rule() (*policy.Rule, error) {
	preseason, err := policy.ParsePreseason(c.Preseason)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	scoring, err := policy.ParseScoring(c.Scoring)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	rule, err := policy.New(
		policy.WithPreseason(preseason),
		policy.WithScoring(scoring),
		policy.WithTierSizes(c.TierSizes),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return rule, nil
}

// Model builds the configured win probability model.
func (c *Config) Model() (winprob.Model, error) {
	switch c.WinModel {
	case WinModelBinned, "":
		return winprob.NewBinned(), nil
	case WinModelGaussian:
		m, err := winprob.NewGaussian(c.GaussianSigma)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: win_model %q", ErrInvalidConfig, c.WinModel)
}

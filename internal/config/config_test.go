package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/rankdrift/internal/config"
	"github.com/okian/rankdrift/internal/domain/policy"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := config.New(context.Background())

		Convey("Then it should describe the original model", func() {
			So(cfg.NumTeams, ShouldEqual, 134)
			So(cfg.NumWeeks, ShouldEqual, 12)
			So(cfg.NumRuns, ShouldEqual, 100)
			So(cfg.Preseason, ShouldEqual, "tiered")
			So(cfg.Scoring, ShouldEqual, "standard")
			So(cfg.TierSizes, ShouldResemble, []int{34, 50, 50})
			So(cfg.WinModel, ShouldEqual, "binned")
			So(cfg.TopWindow, ShouldEqual, 25)
			So(cfg.Seed, ShouldEqual, 0)
		})

		Convey("Then it should validate", func() {
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given configurations with problems", t, func() {
		base := func() *config.Config { return config.New(context.Background()) }

		Convey("Then an odd roster should be rejected", func() {
			cfg := base()
			cfg.NumTeams = 133
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then non-positive weeks should be rejected", func() {
			cfg := base()
			cfg.NumWeeks = 0
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then non-positive runs should be rejected", func() {
			cfg := base()
			cfg.NumRuns = -1
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then tier sizes that miss the roster should be rejected", func() {
			cfg := base()
			cfg.TierSizes = []int{34, 50, 49}
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then an unknown preseason should be rejected", func() {
			cfg := base()
			cfg.Preseason = "alphabetical"
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then an unknown win model should be rejected", func() {
			cfg := base()
			cfg.WinModel = "elo"
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then a gaussian model without spread should be rejected", func() {
			cfg := base()
			cfg.WinModel = config.WinModelGaussian
			cfg.GaussianSigma = 0
			So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestBuilders(t *testing.T) {
	Convey("Given a valid configuration", t, func() {
		cfg := config.New(context.Background())
		cfg.Preseason = string(policy.PreseasonInverted)
		cfg.Scoring = string(policy.ScoringHarsh)

		Convey("When the rule is built", func() {
			rule, err := cfg.Rule()
			So(err, ShouldBeNil)

			Convey("Then it should carry both policy axes", func() {
				So(rule.Preseason(), ShouldEqual, policy.PreseasonInverted)
				So(rule.Scoring(), ShouldEqual, policy.ScoringHarsh)
			})
		})

		Convey("When the win model is built", func() {
			m, err := cfg.Model()
			So(err, ShouldBeNil)

			Convey("Then it should produce complementary probabilities", func() {
				So(m.WinProbability(1, 10)+m.WinProbability(10, 1), ShouldAlmostEqual, 1.0, 1e-12)
			})
		})

		Convey("When the gaussian model is selected", func() {
			cfg.WinModel = config.WinModelGaussian
			m, err := cfg.Model()
			So(err, ShouldBeNil)
			So(m.WinProbability(1, 100), ShouldBeGreaterThan, 0.99)
		})
	})
}

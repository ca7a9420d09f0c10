package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/rankdrift/internal/config"
	"github.com/okian/rankdrift/internal/domain/season"
	"github.com/okian/rankdrift/internal/render"
	"github.com/okian/rankdrift/pkg/logger"
)

// trajectory simulates a single season and writes every team's
// committee rank, week by week, as CSV. Useful for eyeballing how an
// individual season unfolds rather than the averaged drift.
func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	teams := flag.Int("teams", cfg.NumTeams, "number of teams in the field")
	weeks := flag.Int("weeks", cfg.NumWeeks, "number of weeks to simulate")
	seed := flag.Int64("seed", cfg.Seed, "season seed; 0 derives one from the clock")
	preseason := flag.String("preseason", cfg.Preseason, "preseason policy: tiered or inverted")
	scoring := flag.String("scoring", cfg.Scoring, "scoring policy: standard or harsh")
	out := flag.String("out", "", "output file; empty writes to stdout")
	flag.Parse()

	cfg.NumTeams = *teams
	cfg.NumWeeks = *weeks
	cfg.Seed = *seed
	cfg.Preseason = *preseason
	cfg.Scoring = *scoring
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	rule, err := cfg.Rule()
	if err != nil {
		os.Stderr.WriteString("invalid policy: " + err.Error() + "\n")
		os.Exit(1)
	}
	model, err := cfg.Model()
	if err != nil {
		os.Stderr.WriteString("invalid win model: " + err.Error() + "\n")
		os.Exit(1)
	}

	sea, err := season.New(
		season.WithNumTeams(cfg.NumTeams),
		season.WithNumWeeks(cfg.NumWeeks),
		season.WithSeed(cfg.Seed),
		season.WithRule(rule),
		season.WithWinModel(model),
	)
	if err != nil {
		os.Stderr.WriteString("failed to build season: " + err.Error() + "\n")
		os.Exit(1)
	}

	snapshots, err := sea.Run(ctx)
	if err != nil {
		log.Error(ctx, "season failed", logger.Error(err))
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Error(ctx, "cannot create output file", logger.String("path", *out), logger.Error(err))
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := render.TrajectoryCSV(w, snapshots, rule); err != nil {
		log.Error(ctx, "rendering failed", logger.Error(err))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/rankdrift/internal/config"
	"github.com/okian/rankdrift/internal/render"
	"github.com/okian/rankdrift/internal/sim"
	"github.com/okian/rankdrift/pkg/logger"
	"github.com/okian/rankdrift/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeout constants for the optional metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Command-line flags override file and env configuration.
	runs := flag.Int("runs", cfg.NumRuns, "number of simulated seasons to average")
	teams := flag.Int("teams", cfg.NumTeams, "number of teams in the field")
	weeks := flag.Int("weeks", cfg.NumWeeks, "number of weeks per season")
	seed := flag.Int64("seed", cfg.Seed, "base seed; 0 derives one from the clock")
	workers := flag.Int("workers", cfg.Workers, "number of concurrent season workers")
	preseason := flag.String("preseason", cfg.Preseason, "preseason policy: tiered or inverted")
	scoring := flag.String("scoring", cfg.Scoring, "scoring policy: standard or harsh")
	winModel := flag.String("win-model", cfg.WinModel, "win probability model: binned or gaussian")
	topWindow := flag.Int("top", cfg.TopWindow, "size of the top-of-poll window in the stats")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "listen address for Prometheus metrics; empty disables")
	flag.Parse()

	cfg.NumRuns = *runs
	cfg.NumTeams = *teams
	cfg.NumWeeks = *weeks
	cfg.Seed = *seed
	cfg.Workers = *workers
	cfg.Preseason = *preseason
	cfg.Scoring = *scoring
	cfg.WinModel = *winModel
	cfg.TopWindow = *topWindow
	cfg.MetricsAddr = *metricsAddr
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, log, cfg.MetricsAddr)
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

	svc, err := sim.New(
		sim.WithRuns(cfg.NumRuns),
		sim.WithNumTeams(cfg.NumTeams),
		sim.WithNumWeeks(cfg.NumWeeks),
		sim.WithSeed(cfg.Seed),
		sim.WithWorkerCount(cfg.Workers),
		sim.WithRule(rule),
		sim.WithWinModel(model),
		sim.WithTopWindow(cfg.TopWindow),
		sim.WithLogger(log),
	)
	if err != nil {
		os.Stderr.WriteString("failed to build simulation: " + err.Error() + "\n")
		os.Exit(1)
	}

	started := time.Now()
	series, err := svc.Run(ctx)
	if err != nil {
		log.Error(ctx, "simulation failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "simulation complete",
		logger.Int("runs", cfg.NumRuns),
		logger.Int("weeks", cfg.NumWeeks),
		logger.Duration("elapsed", time.Since(started)))

	if err := render.Table(os.Stdout, series, cfg.NumRuns); err != nil {
		log.Error(ctx, "rendering failed", logger.Error(err))
		os.Exit(1)
	}
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, log logger.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}

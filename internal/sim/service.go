// Package sim fans a batch of independent season runs out to workers and
// averages the resulting metric series.
package sim

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/rankdrift/internal/domain/policy"
	"github.com/okian/rankdrift/internal/domain/season"
	"github.com/okian/rankdrift/internal/domain/stats"
	"github.com/okian/rankdrift/internal/domain/winprob"
	"github.com/okian/rankdrift/internal/sim/collector"
	"github.com/okian/rankdrift/internal/sim/queue"
	"github.com/okian/rankdrift/pkg/logger"
	"github.com/okian/rankdrift/pkg/metrics"
)

// DefaultNumRuns matches the original 100-run batches.
const DefaultNumRuns = 100

// Service owns one batch of runs: configuration, fan-out, and the final
// cross-run average.
type Service struct {
	numRuns   int
	numTeams  int
	numWeeks  int
	topWindow int
	workers   int
	seed      int64
	rule      *policy.Rule
	model     winprob.Model

	logger logger.Logger
}

// New validates the batch configuration and builds a Service. Any
// configuration problem surfaces here, never mid-batch.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		numRuns:   DefaultNumRuns,
		numTeams:  season.DefaultNumTeams,
		numWeeks:  season.DefaultNumWeeks,
		topWindow: stats.DefaultTopWindow,
		workers:   runtime.NumCPU(),
		model:     winprob.NewBinned(),
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

	if s.numRuns < 1 {
		return nil, fmt.Errorf("%w: run count %d must be positive", ErrInvalidBatch, s.numRuns)
	}
	if s.topWindow < 1 {
		return nil, fmt.Errorf("%w: top window %d must be positive", ErrInvalidBatch, s.topWindow)
	}
	if s.workers < 1 {
		s.workers = 1
	}

	// Probe the season configuration now so a bad roster or tier setup
	// fails before any run is scheduled.
	if _, err := season.New(
		season.WithNumTeams(s.numTeams),
		season.WithNumWeeks(s.numWeeks),
		season.WithRule(s.rule),
		season.WithWinModel(s.model),
		season.WithSeed(1),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Run executes the whole batch and returns the six averaged series.
// With a fixed seed the result is deterministic regardless of worker
// count or scheduling.
func (s *Service) Run(ctx context.Context) (stats.Series, error) {
	if s.logger == nil {
		s.logger = logger.Get().Named("sim")
	}

	batchID := uuid.NewString()
	baseSeed := s.seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	s.logger.Info(ctx, "starting batch",
		logger.String("batch", batchID),
		logger.Int("runs", s.numRuns),
		logger.Int("teams", s.numTeams),
		logger.Int("weeks", s.numWeeks),
		logger.Int("workers", s.workers),
		logger.String("preseason", string(s.rule.Preseason())),
		logger.String("scoring", string(s.rule.Scoring())))

	col, err := collector.New(s.numRuns)
	if err != nil {
		return stats.Series{}, err
	}
	q := queue.NewInMemoryQueue(queue.WithCapacity(s.numRuns))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var once sync.Once
	var runErr error
	fail := func(err error) {
		once.Do(func() {
			runErr = err
			cancel()
		})
	}

	metrics.UpdateActiveWorkers(s.workers)
	defer metrics.UpdateActiveWorkers(0)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(runCtx, q, col, fail)
		}()
	}

	for run := 0; run < s.numRuns; run++ {
		req := queue.Request{
			Run:  run,
			Seed: RunSeed(baseSeed, run),
			ID:   uuid.NewString(),
		}
		if !q.Enqueue(runCtx, req) {
			fail(fmt.Errorf("%w: run %d", ErrEnqueueFailed, run))
			break
		}
	}
	if err := q.Close(); err != nil {
		fail(err)
	}

	wg.Wait()

	if runErr != nil {
		s.logger.Error(ctx, "batch failed", logger.String("batch", batchID), logger.Error(runErr))
		return stats.Series{}, runErr
	}
	if err := ctx.Err(); err != nil {
		return stats.Series{}, err
	}

	mean, err := col.Mean()
	if err != nil {
		return stats.Series{}, err
	}

	s.logger.Info(ctx, "batch complete",
		logger.String("batch", batchID),
		logger.Int("runs", col.Count()))
	return mean, nil
}

// worker drains the queue, playing one full season per request.
func (s *Service) worker(ctx context.Context, q queue.Queue, col *collector.Collector, fail func(error)) {
	for req := range q.Dequeue(ctx) {
		select {
		case <-ctx.Done():
			return
		default:
		}

		start := time.Now()
		series, err := s.runOne(ctx, req.Seed)
		if err != nil {
			metrics.RecordRunFailed()
			fail(fmt.Errorf("run %d (%s): %w", req.Run, req.ID, err))
			return
		}
		if err := col.Add(req.Run, series); err != nil {
			metrics.RecordRunFailed()
			fail(err)
			return
		}

		elapsed := time.Since(start)
		metrics.RecordRunCompleted()
		metrics.RecordRunDuration(elapsed.Seconds())
		metrics.RecordWeeks(s.numWeeks)
		metrics.RecordMatchups(s.numWeeks * s.numTeams / 2)

		s.logger.Debug(ctx, "run complete",
			logger.String("run", req.ID),
			logger.Int("index", req.Run),
			logger.Duration("elapsed", elapsed))
	}
}

// runOne plays a single season and reduces it to metric series.
func (s *Service) runOne(ctx context.Context, seed int64) (stats.Series, error) {
	sim, err := season.New(
		season.WithNumTeams(s.numTeams),
		season.WithNumWeeks(s.numWeeks),
		season.WithRule(s.rule),
		season.WithWinModel(s.model),
		season.WithSeed(seed),
	)
	if err != nil {
		return stats.Series{}, err
	}

	snapshots, err := sim.Run(ctx)
	if err != nil {
		return stats.Series{}, err
	}

	return stats.Compute(snapshots, s.topWindow)
}

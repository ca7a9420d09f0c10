// Package collector gathers per-run metric series as workers finish and
// averages them once the batch is complete.
//
// Runs land at fixed indices, so the final mean is independent of worker
// scheduling order.
package collector

import (
	"fmt"
	"sync"

	"github.com/okian/rankdrift/internal/domain/stats"
)

// Collector is a thread-safe store of one Series per run.
type Collector struct {
	mu     sync.Mutex
	runs   []stats.Series
	filled []bool
	count  int
}

// New creates a collector sized for a known run count.
func New(numRuns int) (*Collector, error) {
	if numRuns <= 0 {
		return nil, fmt.Errorf("%w: run count %d", ErrInvalidRunCount, numRuns)
	}
	return &Collector{
		runs:   make([]stats.Series, numRuns),
		filled: make([]bool, numRuns),
	}, nil
}

// Add stores one run's series at its index.
func (c *Collector) Add(run int, s stats.Series) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if run < 0 || run >= len(c.runs) {
		return fmt.Errorf("%w: run %d of %d", ErrRunOutOfRange, run, len(c.runs))
	}
	if c.filled[run] {
		return fmt.Errorf("%w: run %d", ErrDuplicateRun, run)
	}
	c.runs[run] = s
	c.filled[run] = true
	c.count++
	return nil
}

// Count reports how many runs have been collected so far.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Complete reports whether every run has arrived.
func (c *Collector) Complete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count == len(c.runs)
}

// Mean averages all collected series element-wise. Every run must have
// arrived first.
func (c *Collector) Mean() (stats.Series, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count != len(c.runs) {
		return stats.Series{}, fmt.Errorf("%w: %d of %d runs collected", ErrIncomplete, c.count, len(c.runs))
	}
	return stats.Mean(c.runs)
}

// Package queue feeds season run requests to the simulation workers.
//
// It is a bounded in-memory queue with non-blocking enqueue and
// channel-based dequeue, closed once all requests for a batch have been
// submitted.
package queue

import (
	"context"
	"sync"

	"github.com/okian/rankdrift/pkg/metrics"
)

const defaultCapacity = 1024

// Request describes one independent season run.
type Request struct {
	Run  int    // run index within the batch, 0-based
	Seed int64  // seed for this run's random stream
	ID   string // correlation id for logging
}

// Queue provides non-blocking enqueue and channel-based dequeue.
type Queue interface {
	// Enqueue adds a request. Returns false when the queue is closed or full.
	Enqueue(ctx context.Context, r Request) bool

	// Dequeue returns the channel workers receive from. The channel is
	// closed when the queue is closed and drained.
	Dequeue(ctx context.Context) <-chan Request

	// Len reports the number of waiting requests.
	Len(ctx context.Context) int

	// Close stops accepting requests; pending ones remain deliverable.
	Close() error

	// IsClosed reports whether Close has been called.
	IsClosed() bool
}

// InMemoryQueue implements Queue with a buffered channel.
type InMemoryQueue struct {
	requests chan Request
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a queue with the given options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.requests = make(chan Request, q.capacity)
	metrics.UpdateQueueSize(0)
	return q
}

// Enqueue adds a request to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, r Request) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.requests <- r:
		metrics.UpdateQueueSize(len(q.requests))
		return true
	case <-ctx.Done():
		return false
	default:
		return false // full
	}
}

// Dequeue returns the receive channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Request {
	return q.requests
}

// Len reports the number of waiting requests.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.requests)
}

// Close stops accepting new requests and lets consumers drain.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrAlreadyClosed
	}
	q.closed = true
	close(q.requests)
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

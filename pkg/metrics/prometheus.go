// Package metrics provides Prometheus metrics for the rankdrift simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns all Prometheus collectors for the simulator.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	// Batch progress
	runsCompleted prometheus.Counter
	runsFailed    prometheus.Counter
	runDuration   prometheus.Histogram

	// Simulation volume
	weeksSimulated    prometheus.Counter
	matchupsSimulated prometheus.Counter

	// Fan-out health
	activeWorkers prometheus.Gauge
	queueSize     prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "rankdrift",
		subsystem: "sim",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	m.runsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_completed_total",
		Help:      "Number of season runs completed successfully.",
	})
	m.runsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_failed_total",
		Help:      "Number of season runs that returned an error.",
	})
	m.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of a single season run.",
		Buckets:   m.buckets,
	})
	m.weeksSimulated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weeks_simulated_total",
		Help:      "Number of season weeks simulated across all runs.",
	})
	m.matchupsSimulated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matchups_simulated_total",
		Help:      "Number of individual matchups simulated across all runs.",
	})
	m.activeWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_workers",
		Help:      "Number of run workers currently processing.",
	})
	m.queueSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Number of run requests waiting in the job queue.",
	})

	m.registry.MustRegister(
		m.runsCompleted,
		m.runsFailed,
		m.runDuration,
		m.weeksSimulated,
		m.matchupsSimulated,
		m.activeWorkers,
		m.queueSize,
	)
}

// Package-level helpers operating on the global manager.

// RecordRunCompleted increments the completed-run counter.
func RecordRunCompleted() {
	globalManager.runsCompleted.Inc()
}

// RecordRunFailed increments the failed-run counter.
func RecordRunFailed() {
	globalManager.runsFailed.Inc()
}

// RecordRunDuration observes one run's duration in seconds.
func RecordRunDuration(seconds float64) {
	globalManager.runDuration.Observe(seconds)
}

// RecordWeeks adds to the simulated-week counter.
func RecordWeeks(n int) {
	globalManager.weeksSimulated.Add(float64(n))
}

// RecordMatchups adds to the simulated-matchup counter.
func RecordMatchups(n int) {
	globalManager.matchupsSimulated.Add(float64(n))
}

// UpdateActiveWorkers sets the active worker gauge.
func UpdateActiveWorkers(n int) {
	globalManager.activeWorkers.Set(float64(n))
}

// UpdateQueueSize sets the queue size gauge.
func UpdateQueueSize(n int) {
	globalManager.queueSize.Set(float64(n))
}

// GetRegistry returns the registry backing the global manager,
// suitable for serving with promhttp.HandlerFor.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

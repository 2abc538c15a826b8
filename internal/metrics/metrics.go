// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, article operations,
// side effects, background work and database connections.
package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "knowledge_base"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the per-client rate limiter",
		},
	)

	// Article metrics - track store operations
	ArticleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "operations_total",
			Help:      "Total number of article store operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	ArticleOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "operation_duration_seconds",
			Help:      "Article store operation duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	VersionsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "versions_written_total",
			Help:      "Total number of version rows appended by reason",
		},
		[]string{"reason"},
	)

	PositionsRewritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "positions_rewritten_total",
			Help:      "Total number of resource positions changed by reordering",
		},
	)

	CascadeDeleteSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "cascade_delete_size",
			Help:      "Number of resources removed by one delete",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// Side effect metrics - failures never fail the operation that triggered them
	SideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "side_effects",
			Name:      "failures_total",
			Help:      "Total number of swallowed collaborator failures by collaborator",
		},
		[]string{"collaborator"},
	)

	// Background metrics - event bus, mail and scheduled jobs
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of events by topic and result",
		},
		[]string{"topic", "result"},
	)

	MailDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "deliveries_total",
			Help:      "Total number of change mails by result",
		},
		[]string{"result"},
	)

	ScheduledJobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Total number of scheduled job runs by job and result",
		},
		[]string{"job", "result"},
	)

	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Total number of search queries by result",
		},
		[]string{"result"},
	)

	// Database metrics - track connection pool usage
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is the subset of pool statistics exported as gauges.
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector copies pool statistics into DBConnectionPoolSize on an interval.
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a collector for a pgx pool.
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the collector and waits for it to exit. It is safe to call twice.
func (c *PoolStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
}

// ObserveOperation records the result and duration of one article operation.
func ObserveOperation(operation, result string, durationSeconds float64) {
	ArticleOperationsTotal.WithLabelValues(operation, result).Inc()
	ArticleOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// AddVersionsWritten counts appended version rows.
func AddVersionsWritten(reason string, n int) {
	if n > 0 {
		VersionsWritten.WithLabelValues(reason).Add(float64(n))
	}
}

// AddPositionsRewritten counts resources whose position changed.
func AddPositionsRewritten(n int) {
	if n > 0 {
		PositionsRewritten.Add(float64(n))
	}
}

// RecordSideEffectFailure counts one swallowed collaborator failure.
func RecordSideEffectFailure(collaborator string) {
	SideEffectFailures.WithLabelValues(collaborator).Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created.
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}

package metrics

import (
	"net/http"
	"time"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GeometricBuckets builds n buckets where bucket[i] = 5^(i-1) seconds,
// so bucket[0] is 0.2 and bucket[1] is 1. This covers local in-process
// sends (microseconds) through degraded multi-second retries in a handful
// of buckets.
func GeometricBuckets(n int) []float64 {
	buckets := make([]float64, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			buckets[i] = 1.0 / 5
			continue
		}
		v := 1.0
		for j := 1; j < i; j++ {
			v *= 5
		}
		buckets[i] = v
	}
	return buckets
}

var (
	// Blockstore metrics
	ReaderMethodCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgerd_blockstore_method_calls_total",
			Help: "Total number of blockstore reader method invocations, by method name",
		},
		[]string{"method"},
	)

	MaxRoot = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledgerd_blockstore_max_root",
			Help: "Highest rooted slot observed by the reader",
		},
	)

	LowestCleanupSlot = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledgerd_blockstore_lowest_cleanup_slot",
			Help: "Lowest slot guaranteed not to be concurrently purged",
		},
	)

	// Forwarding metrics
	PendingPoolSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledgerd_forwarding_pending_pool_size",
			Help: "Number of transactions currently tracked by the forwarding pending pool",
		},
	)

	TransactionsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledgerd_forwarding_transactions_submitted_total",
			Help: "Total number of transactions submitted to the forwarding service",
		},
	)

	TransactionsDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgerd_forwarding_transactions_dropped_total",
			Help: "Total number of transactions dropped from the pending pool, by reason",
		},
		[]string{"reason"},
	)

	BatchSendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledgerd_forwarding_batch_send_duration_seconds",
			Help:    "Time taken to push one batch of transactions to leader TPU sockets",
			Buckets: GeometricBuckets(11),
		},
	)

	SignatureStatusDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledgerd_forwarding_signature_status_duration_seconds",
			Help:    "Round-trip time for a signature status poll against the RPC oracle",
			Buckets: GeometricBuckets(11),
		},
	)

	LeaderRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledgerd_forwarding_leader_refresh_duration_seconds",
			Help:    "Time taken to refresh epoch info, blockhash, and leader schedule",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(ReaderMethodCalls)
	prometheus.MustRegister(MaxRoot)
	prometheus.MustRegister(LowestCleanupSlot)

	prometheus.MustRegister(PendingPoolSize)
	prometheus.MustRegister(TransactionsSubmittedTotal)
	prometheus.MustRegister(TransactionsDroppedTotal)
	prometheus.MustRegister(BatchSendDuration)
	prometheus.MustRegister(SignatureStatusDuration)
	prometheus.MustRegister(LeaderRefreshDuration)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time to histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the elapsed time to a labeled histogram.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ReaderCounters implements blockstore.MethodCounters over
// ReaderMethodCalls, so the reader can count its own method calls
// without importing prometheus.
type ReaderCounters struct{}

// IncCounter increments the call counter for method.
func (ReaderCounters) IncCounter(method string) {
	ReaderMethodCalls.WithLabelValues(method).Inc()
}

var _ blockstore.MethodCounters = ReaderCounters{}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	relaySubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "submissions_total",
		Help:      "Count of header batch submissions.",
	}, []string{"operation", "network", "status"})

	relaySubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "submission_duration_seconds",
		Help:      "Duration of header batch submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})

	relaySubmittedHeaders = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "submission_headers",
		Help:      "Number of headers per submitted batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"operation", "network"})

	relayFinalizedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "finalized_headers_total",
		Help:      "Count of headers finalized.",
	}, []string{"network"})

	relayPrunedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "pruned_headers_total",
		Help:      "Count of fork headers pruned at finalization.",
	}, []string{"network"})

	relayQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "queries_total",
		Help:      "Count of relay queries.",
	}, []string{"operation", "network", "status"})

	relayQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relay",
		Name:      "query_duration_seconds",
		Help:      "Duration of relay queries.",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"operation", "network", "status"})
)

// Relay tracks the relay engine.
type Relay struct {
	network string
}

// NewRelay constructs a Relay collector.
func NewRelay(network model.Network) *Relay {
	return &Relay{network: orUnknown(network)}
}

// ObserveSubmission records one submitted batch.
func (m Relay) ObserveSubmission(operation string, err error, headers int, started time.Time) {
	s := status(err)
	relaySubmissionsTotal.WithLabelValues(operation, m.network, s).Inc()
	relaySubmissionDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
	if headers > 0 {
		relaySubmittedHeaders.WithLabelValues(operation, m.network).Observe(float64(headers))
	}
}

// ObserveFinalized records headers finalized and pruned by one batch.
func (m Relay) ObserveFinalized(finalized, pruned int) {
	relayFinalizedTotal.WithLabelValues(m.network).Add(float64(finalized))
	relayPrunedTotal.WithLabelValues(m.network).Add(float64(pruned))
}

// ObserveQuery records one read operation.
func (m Relay) ObserveQuery(operation string, err error, started time.Time) {
	s := status(err)
	relayQueriesTotal.WithLabelValues(operation, m.network, s).Inc()
	relayQueryDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	relayerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relayer",
		Name:      "sync_total",
		Help:      "Count of relayer sync rounds.",
	}, []string{"network", "status"})

	relayerSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relayer",
		Name:      "sync_duration_seconds",
		Help:      "Duration of relayer sync rounds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	relayerSubmittedHeaders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relayer",
		Name:      "submitted_headers_total",
		Help:      "Count of headers the relayer submitted.",
	}, []string{"network"})

	relayerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockrelay7000",
		Subsystem: "relayer",
		Name:      "height",
		Help:      "Best height seen by the relayer, per side.",
	}, []string{"network", "side"})
)

// Relayer tracks the node-following relayer.
type Relayer struct {
	network string
}

// NewRelayer constructs a Relayer collector.
func NewRelayer(network model.Network) *Relayer {
	return &Relayer{network: orUnknown(network)}
}

// ObserveSync records one sync round.
func (m Relayer) ObserveSync(err error, submitted int, started time.Time) {
	s := status(err)
	relayerSyncTotal.WithLabelValues(m.network, s).Inc()
	relayerSyncDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	relayerSubmittedHeaders.WithLabelValues(m.network).Add(float64(submitted))
}

// ObserveHeights records the node tip and the relay tip.
func (m Relayer) ObserveHeights(node, relay uint64) {
	relayerHeight.WithLabelValues(m.network, "node").Set(float64(node))
	relayerHeight.WithLabelValues(m.network, "relay").Set(float64(relay))
}

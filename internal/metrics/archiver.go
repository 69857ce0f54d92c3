package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiverFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "archiver",
		Name:      "flush_total",
		Help:      "Count of event batches written to the archive.",
	}, []string{"network", "status"})

	archiverFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockrelay7000",
		Subsystem: "archiver",
		Name:      "flush_duration_seconds",
		Help:      "Duration of archive writes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	archiverFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockrelay7000",
		Subsystem: "archiver",
		Name:      "flush_size",
		Help:      "Number of events per archive write.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	archiverDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockrelay7000",
		Subsystem: "archiver",
		Name:      "dropped_events_total",
		Help:      "Count of events dropped because the archive queue was full.",
	}, []string{"network"})
)

// Archiver tracks the event archiver.
type Archiver struct {
	network string
}

// NewArchiver constructs an Archiver collector.
func NewArchiver(network model.Network) *Archiver {
	return &Archiver{network: orUnknown(network)}
}

// ObserveFlush records one archive write.
func (m Archiver) ObserveFlush(err error, rows int, started time.Time) {
	s := status(err)
	archiverFlushTotal.WithLabelValues(m.network, s).Inc()
	archiverFlushDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	archiverFlushSize.WithLabelValues(m.network).Observe(float64(rows))
}

// ObserveDropped records events that could not be queued.
func (m Archiver) ObserveDropped(rows int) {
	archiverDroppedTotal.WithLabelValues(m.network).Add(float64(rows))
}

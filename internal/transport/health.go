package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/clock"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RelayServiceName is the gRPC health service that tracks the relay.
const RelayServiceName = "blockrelay7000.Relay"

// HealthReporter mirrors the relay state into a gRPC health server. The
// relay serves once it is initialized and not paused.
type HealthReporter struct {
	logger   *zap.Logger
	relay    Relay
	server   *health.Server
	interval time.Duration
}

func NewHealthReporter(r Relay, server *health.Server, interval time.Duration, logger *zap.Logger) *HealthReporter {
	return &HealthReporter{
		logger:   logger.Named("health"),
		relay:    r,
		server:   server,
		interval: interval,
	}
}

// Run refreshes the health status every interval until ctx ends.
func (h *HealthReporter) Run(ctx context.Context) error {
	for {
		h.Update(ctx)
		if err := clock.Wait(ctx, h.interval, nil); err != nil {
			return err
		}
	}
}

// Update sets the serving status from the current relay status.
func (h *HealthReporter) Update(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	st, err := h.relay.Status(ctx)
	switch {
	case err != nil:
		h.logger.Warn("relay status failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	case !st.Initialized || st.Paused:
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(RelayServiceName, status)
	return status
}

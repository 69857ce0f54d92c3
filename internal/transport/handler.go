// Package transport serves the relay over HTTP and reports its health over gRPC.
package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20

// endpoint returns the response body, or nil for 204 No Content.
type endpoint func(r *http.Request, params map[string]string) (any, error)

type route struct {
	method  string
	pattern string
	name    string
	serve   endpoint
}

// Handler exposes relay queries, public submissions and owner operations.
type Handler struct {
	logger  *zap.Logger
	relay   Relay
	archive Archive
	metrics Metrics
	network model.Network
}

// NewHandler builds a Handler. archive may be nil when no archive is
// configured; its routes then answer 404.
func NewHandler(r Relay, archive Archive, metrics Metrics, network model.Network, logger *zap.Logger) (*Handler, error) {
	if r == nil {
		return nil, errors.New("relay is required")
	}
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	return &Handler{
		logger:  logger.Named("http"),
		relay:   r,
		archive: archive,
		metrics: metrics,
		network: network,
	}, nil
}

func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/v1/status", "status", h.status},
		{http.MethodGet, "/v1/blocks/{hash}/height", "find_height", h.findHeight},
		{http.MethodGet, "/v1/heights/{height}", "candidates", h.candidates},
		{http.MethodGet, "/v1/heights/{height}/hashes/{fork}", "block_hash", h.blockHash},
		{http.MethodGet, "/v1/heights/{height}/finalized", "finalized_block", h.finalizedBlock},
		{http.MethodPost, "/v1/proofs/verify", "check_tx_proof", h.checkTxProof},
		{http.MethodPost, "/v1/headers", "add_headers", h.addHeaders},
		{http.MethodPost, "/v1/headers/retarget", "add_headers_retarget", h.addHeadersWithRetarget},
		{http.MethodGet, "/v1/archive/events", "archive_events", h.archiveEvents},

		{http.MethodPost, "/v1/admin/initialize", "admin_initialize", h.initialize},
		{http.MethodPost, "/v1/admin/pause", "admin_pause", h.pause},
		{http.MethodPost, "/v1/admin/unpause", "admin_unpause", h.unpause},
		{http.MethodPut, "/v1/admin/finalization-parameter", "admin_finalization_parameter", h.setFinalizationParameter},
		{http.MethodPut, "/v1/admin/epoch-length", "admin_epoch_length", h.setEpochLength},
		{http.MethodPost, "/v1/admin/trim", "admin_trim", h.trimHistory},
		{http.MethodPost, "/v1/admin/headers", "admin_add_headers", h.ownerAddHeaders},
		{http.MethodPost, "/v1/admin/headers/retarget", "admin_add_headers_retarget", h.ownerAddHeadersWithRetarget},
	}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	for _, rt := range h.routes() {
		if err := mux.HandlePath(rt.method, rt.pattern, h.wrap(rt)); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) wrap(rt route) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		started := time.Now()
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		code := http.StatusOK
		res, err := rt.serve(r, params)
		switch {
		case err != nil:
			code = h.writeError(w, rt.name, err)
		case res == nil:
			code = http.StatusNoContent
			w.WriteHeader(code)
		default:
			writeJSON(w, code, res)
		}
		h.metrics.ObserveRequest(rt.name, code, started)
	}
}

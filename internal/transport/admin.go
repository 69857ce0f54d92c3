package transport

import (
	"net/http"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
)

type initRequest struct {
	GenesisHeader         string `json:"genesis_header"`
	Height                uint64 `json:"height"`
	PeriodStartHash       string `json:"period_start_hash"`
	FinalizationParameter uint64 `json:"finalization_parameter"`
	Relayer               string `json:"relayer"`
}

type valueRequest struct {
	Value uint64 `json:"value"`
}

type trimRequest struct {
	Below uint64 `json:"below"`
}

func (h *Handler) initialize(r *http.Request, _ map[string]string) (any, error) {
	var req initRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	genesis, err := parseBytes("genesis_header", req.GenesisHeader)
	if err != nil {
		return nil, err
	}
	periodStart, err := parseHash("period_start_hash", req.PeriodStartHash)
	if err != nil {
		return nil, err
	}
	err = h.relay.Initialize(r.Context(), bearerToken(r), relay.InitParams{
		GenesisHeader:         genesis,
		Height:                req.Height,
		PeriodStartHash:       periodStart,
		FinalizationParameter: req.FinalizationParameter,
		Relayer:               req.Relayer,
	})
	if err != nil {
		return nil, err
	}
	return h.status(r, nil)
}

func (h *Handler) pause(r *http.Request, _ map[string]string) (any, error) {
	return nil, h.relay.Pause(r.Context(), bearerToken(r))
}

func (h *Handler) unpause(r *http.Request, _ map[string]string) (any, error) {
	return nil, h.relay.Unpause(r.Context(), bearerToken(r))
}

func (h *Handler) setFinalizationParameter(r *http.Request, _ map[string]string) (any, error) {
	var req valueRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.relay.SetFinalizationParameter(r.Context(), bearerToken(r), req.Value)
}

func (h *Handler) setEpochLength(r *http.Request, _ map[string]string) (any, error) {
	var req valueRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return nil, h.relay.SetEpochLength(r.Context(), bearerToken(r), req.Value)
}

func (h *Handler) trimHistory(r *http.Request, _ map[string]string) (any, error) {
	var req trimRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	removed, err := h.relay.TrimHistory(r.Context(), bearerToken(r), req.Below)
	if err != nil {
		return nil, err
	}
	return trimResponse{Removed: removed}, nil
}

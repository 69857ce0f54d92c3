package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 1000
)

func (h *Handler) status(r *http.Request, _ map[string]string) (any, error) {
	st, err := h.relay.Status(r.Context())
	if err != nil {
		return nil, err
	}
	return newStatusResponse(h.network, st), nil
}

func (h *Handler) findHeight(r *http.Request, params map[string]string) (any, error) {
	hash, err := parseHash("hash", params["hash"])
	if err != nil {
		return nil, err
	}
	height, err := h.relay.FindHeight(r.Context(), hash)
	if err != nil {
		return nil, err
	}
	return heightResponse{Hash: hash.String(), Height: height}, nil
}

func (h *Handler) candidates(r *http.Request, params map[string]string) (any, error) {
	height, err := parseUint("height", params["height"])
	if err != nil {
		return nil, err
	}
	n, err := h.relay.NumberOfCandidates(r.Context(), height)
	if err != nil {
		return nil, err
	}
	return candidatesResponse{Height: height, Candidates: n}, nil
}

func (h *Handler) blockHash(r *http.Request, params map[string]string) (any, error) {
	height, err := parseUint("height", params["height"])
	if err != nil {
		return nil, err
	}
	fork, err := strconv.Atoi(params["fork"])
	if err != nil {
		return nil, fmt.Errorf("%w: fork %q", relay.ErrMalformedInput, params["fork"])
	}
	hash, err := h.relay.GetBlockHeaderHash(r.Context(), height, fork)
	if err != nil {
		return nil, err
	}
	return hashResponse{Height: height, Fork: fork, Hash: hash.String()}, nil
}

func (h *Handler) finalizedBlock(r *http.Request, params map[string]string) (any, error) {
	height, err := parseUint("height", params["height"])
	if err != nil {
		return nil, err
	}
	block, err := h.relay.FinalizedBlock(r.Context(), height)
	if err != nil {
		return nil, err
	}
	return newBlockResponse(block), nil
}

type proofRequest struct {
	TxID   string   `json:"txid"`
	Height uint64   `json:"height"`
	Proof  []string `json:"proof"`
	Index  uint64   `json:"index"`
}

func (h *Handler) checkTxProof(r *http.Request, _ map[string]string) (any, error) {
	var req proofRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	txid, err := parseHash("txid", req.TxID)
	if err != nil {
		return nil, err
	}
	proof := make([]chainhash.Hash, 0, len(req.Proof))
	for i, s := range req.Proof {
		hash, err := parseHash(fmt.Sprintf("proof[%d]", i), s)
		if err != nil {
			return nil, err
		}
		proof = append(proof, hash)
	}
	ok, err := h.relay.CheckTxProof(r.Context(), txid, req.Height, proof, req.Index)
	if err != nil {
		return nil, err
	}
	return proofResponse{Valid: ok}, nil
}

func (h *Handler) archiveEvents(r *http.Request, _ map[string]string) (any, error) {
	if h.archive == nil {
		return nil, errArchiveDisabled
	}
	q := r.URL.Query()

	kind := model.BlockFinalized
	if k := q.Get("kind"); k != "" {
		kind = model.BlockEventKind(k)
		if kind != model.BlockAdded && kind != model.BlockFinalized {
			return nil, fmt.Errorf("%w: kind %q", relay.ErrMalformedInput, k)
		}
	}
	var from uint64
	if s := q.Get("from"); s != "" {
		v, err := parseUint("from", s)
		if err != nil {
			return nil, err
		}
		from = v
	}
	limit := defaultEventsLimit
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > maxEventsLimit {
			return nil, fmt.Errorf("%w: limit must be within 1-%d", relay.ErrMalformedInput, maxEventsLimit)
		}
		limit = v
	}

	events, err := h.archive.BlockEvents(r.Context(), h.network, kind, from, limit)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	resp := eventsResponse{Events: make([]eventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, eventResponse{
			Kind:       e.Kind,
			Height:     e.Height,
			Hash:       e.Hash,
			ParentHash: e.ParentHash,
			Relayer:    e.Relayer,
			RecordedAt: e.RecordedAt,
		})
	}
	return resp, nil
}

package transport

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errArchiveDisabled = errors.New("archive is not configured")

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the status matching err and returns it.
func (h *Handler) writeError(w http.ResponseWriter, route string, err error) int {
	code := httpStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("route", route), zap.Error(err))
		msg = http.StatusText(code)
	}
	writeJSON(w, code, errorResponse{Error: msg, Code: relay.Code(err)})
	return code
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, relay.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, relay.ErrUnknownReference),
		errors.Is(err, relay.ErrNotFinalized),
		errors.Is(err, errArchiveDisabled):
		return http.StatusNotFound
	case errors.Is(err, relay.ErrBlockTooOld):
		return http.StatusGone
	case errors.Is(err, relay.ErrDuplicateHeader),
		errors.Is(err, relay.ErrOutdatedHeader),
		errors.Is(err, relay.ErrAlreadyInitialized):
		return http.StatusConflict
	case errors.Is(err, relay.ErrPaused), errors.Is(err, relay.ErrNotInitialized):
		return http.StatusServiceUnavailable
	case errors.Is(err, relay.ErrChainLinkBroken),
		errors.Is(err, relay.ErrInvalidProofOfWork),
		errors.Is(err, relay.ErrInvalidTarget),
		errors.Is(err, relay.ErrRetargetRequired),
		errors.Is(err, relay.ErrRetargetBoundaryMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, relay.ErrMalformedInput),
		errors.Is(err, relay.ErrInvalidParameter),
		errors.Is(err, relay.ErrInvalidTxID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", relay.ErrMalformedInput, err)
	}
	return nil
}

// bearerToken returns the admin token of an "Authorization: Bearer" header,
// or "" when there is none.
func bearerToken(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func parseUint(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", relay.ErrMalformedInput, name, s)
	}
	return v, nil
}

// parseHash reads a hash in display (byte-reversed) hex.
func parseHash(name, s string) (chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, fmt.Errorf("%w: %s must be %d hex characters", relay.ErrMalformedInput, name, chainhash.MaxHashStringSize)
	}
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: %s: %w", relay.ErrMalformedInput, name, err)
	}
	return *hash, nil
}

// parseBytes reads wire-order bytes such as serialized headers.
func parseBytes(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", relay.ErrMalformedInput, name, err)
	}
	return b, nil
}

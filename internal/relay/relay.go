// Package relay validates Bitcoin header batches, tracks competing forks
// and finalizes the chain once a header is buried F blocks deep.
package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
	"go.uber.org/zap"
)

const (
	opAddHeaders                  = "add_headers"
	opAddHeadersWithRetarget      = "add_headers_with_retarget"
	opOwnerAddHeaders             = "owner_add_headers"
	opOwnerAddHeadersWithRetarget = "owner_add_headers_with_retarget"

	opFindHeight         = "find_height"
	opBlockHeaderHash    = "get_block_header_hash"
	opNumberOfCandidates = "number_of_candidates"
	opCheckTxProof       = "check_tx_proof"
	opStatus             = "status"
	opFinalizedBlock     = "finalized_block"
)

// Relay is the handle every relay operation goes through. Mutations run
// as single store transactions; queries read store snapshots.
type Relay struct {
	store   store.Store
	params  *chaincfg.Params
	auth    Authorizer
	metrics Metrics
	sinks   []EventSink
	logger  *zap.Logger
}

// Option customizes a Relay.
type Option func(*Relay)

// WithEventSink registers s to receive every committed submission.
func WithEventSink(s EventSink) Option {
	return func(r *Relay) {
		r.sinks = append(r.sinks, s)
	}
}

// New builds a Relay over st validating against params.
func New(st store.Store, params *chaincfg.Params, auth Authorizer, metrics Metrics, logger *zap.Logger, opts ...Option) (*Relay, error) {
	if st == nil {
		return nil, errors.New("relay store is required")
	}
	if params == nil {
		return nil, errors.New("chain params are required")
	}
	if auth == nil {
		return nil, errors.New("authorizer is required")
	}
	if metrics == nil {
		return nil, errors.New("relay metrics is required")
	}
	r := &Relay{
		store:   st,
		params:  params,
		auth:    auth,
		metrics: metrics,
		logger:  logger.With(zap.String("network", params.Name)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Params returns the chain parameters the relay validates against.
func (r *Relay) Params() *chaincfg.Params {
	return r.params
}

func (r *Relay) authorize(ctx context.Context, token string) error {
	if err := r.auth.Authorize(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return nil
}

func loadState(rd store.Reader) (store.State, error) {
	st, err := rd.State()
	if err != nil {
		return store.State{}, fmt.Errorf("load state: %w", err)
	}
	if !st.Initialized {
		return store.State{}, ErrNotInitialized
	}
	return st, nil
}

func parseHeader(raw []byte, what string) (*wire.BlockHeader, error) {
	h, err := btc.ParseHeader(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedInput, what, err)
	}
	return h, nil
}

func statusFromState(st store.State) Status {
	s := Status{
		Initialized:           st.Initialized,
		InitialHeight:         st.InitialHeight,
		GenesisHash:           st.GenesisHash,
		LastSubmittedHeight:   st.LastSubmittedHeight,
		EarliestHeight:        st.EarliestHeight,
		FinalizationParameter: st.FinalizationParameter,
		EpochLength:           st.EpochLength,
		Paused:                st.Paused,
	}
	if st.NextUnfinalized > 0 {
		s.FinalizedHeight = st.NextUnfinalized - 1
	}
	return s
}

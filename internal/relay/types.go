package relay

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Authorizer decides whether a presented admin token may run a
	// privileged operation.
	Authorizer interface {
		Authorize(ctx context.Context, token string) error
	}

	// EventSink receives the result of every committed submission.
	EventSink interface {
		Publish(ctx context.Context, res *SubmitResult)
	}

	Metrics interface {
		ObserveSubmission(operation string, err error, headers int, started time.Time)
		ObserveFinalized(finalized, pruned int)
		ObserveQuery(operation string, err error, started time.Time)
	}
)

// BlockEvent describes a header added to or finalized in the relay.
type BlockEvent struct {
	Height  uint64
	Hash    chainhash.Hash
	Parent  chainhash.Hash
	Relayer string
}

// SubmitResult reports the effect of one accepted batch.
type SubmitResult struct {
	Added               []BlockEvent
	Finalized           []BlockEvent
	Pruned              int
	LastSubmittedHeight uint64
	FinalizedHeight     uint64
}

// Status is a snapshot of the relay bookkeeping.
type Status struct {
	Initialized           bool
	InitialHeight         uint64
	GenesisHash           chainhash.Hash
	LastSubmittedHeight   uint64
	FinalizedHeight       uint64
	EarliestHeight        uint64
	FinalizationParameter uint64
	EpochLength           uint64
	Paused                bool
}

// InitParams seeds an empty relay.
type InitParams struct {
	GenesisHeader         []byte
	Height                uint64
	PeriodStartHash       chainhash.Hash
	FinalizationParameter uint64
	Relayer               string
}

package transport

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Relay is the part of the relay engine served over HTTP.
	Relay interface {
		Status(ctx context.Context) (relay.Status, error)
		FindHeight(ctx context.Context, hash chainhash.Hash) (uint64, error)
		GetBlockHeaderHash(ctx context.Context, height uint64, forkIndex int) (chainhash.Hash, error)
		NumberOfCandidates(ctx context.Context, height uint64) (int, error)
		CheckTxProof(ctx context.Context, txid chainhash.Hash, height uint64, proof []chainhash.Hash, index uint64) (bool, error)
		FinalizedBlock(ctx context.Context, height uint64) (relay.BlockEvent, error)

		AddHeaders(ctx context.Context, anchor, headers []byte, relayer string) (*relay.SubmitResult, error)
		AddHeadersWithRetarget(ctx context.Context, periodStart, periodEnd, headers []byte, relayer string) (*relay.SubmitResult, error)

		Initialize(ctx context.Context, token string, p relay.InitParams) error
		Pause(ctx context.Context, token string) error
		Unpause(ctx context.Context, token string) error
		SetFinalizationParameter(ctx context.Context, token string, f uint64) error
		SetEpochLength(ctx context.Context, token string, n uint64) error
		TrimHistory(ctx context.Context, token string, below uint64) (int, error)
		OwnerAddHeaders(ctx context.Context, token string, anchor, headers []byte, relayer string) (*relay.SubmitResult, error)
		OwnerAddHeadersWithRetarget(ctx context.Context, token string, periodStart, periodEnd, headers []byte, relayer string) (*relay.SubmitResult, error)
	}

	// Archive reads archived relay events.
	Archive interface {
		BlockEvents(ctx context.Context, network model.Network, kind model.BlockEventKind, fromHeight uint64, limit int) ([]model.BlockEvent, error)
	}

	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)

package relayer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Relay interface {
		Status(ctx context.Context) (relay.Status, error)
		FindHeight(ctx context.Context, hash chainhash.Hash) (uint64, error)
		AddHeaders(ctx context.Context, anchor, headers []byte, relayer string) (*relay.SubmitResult, error)
		AddHeadersWithRetarget(ctx context.Context, periodStart, periodEnd, headers []byte, relayer string) (*relay.SubmitResult, error)
	}
	HeaderSource interface {
		BestHeight(ctx context.Context) (uint64, error)
		HashAtHeight(ctx context.Context, height uint64) (chainhash.Hash, error)
		HeaderByHeight(ctx context.Context, height uint64) (*wire.BlockHeader, error)
	}
	Metrics interface {
		ObserveSync(err error, submitted int, started time.Time)
		ObserveHeights(node, relay uint64)
	}
)

package archiver

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlockEvents(ctx context.Context, events []model.BlockEvent) error
		MaxFinalizedHeight(ctx context.Context, network model.Network) (uint64, bool, error)
	}
	Relay interface {
		Status(ctx context.Context) (relay.Status, error)
		FinalizedBlock(ctx context.Context, height uint64) (relay.BlockEvent, error)
	}
	Metrics interface {
		ObserveFlush(err error, rows int, started time.Time)
		ObserveDropped(rows int)
	}
)

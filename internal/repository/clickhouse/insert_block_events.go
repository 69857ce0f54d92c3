package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
)

const insertBlockEventsQuery = `
INSERT INTO relay_block_events (
	network,
	kind,
	height,
	hash,
	parent_hash,
	relayer,
	recorded_at
) VALUES`

// InsertBlockEvents stores relay events in one batch.
func (r *Repository) InsertBlockEvents(ctx context.Context, events []model.BlockEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block_events", firstNetwork(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare block events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(
			string(e.Network),
			string(e.Kind),
			e.Height,
			e.Hash,
			e.ParentHash,
			e.Relayer,
			e.RecordedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block events: %w", err)
	}
	return nil
}

func firstNetwork(events []model.BlockEvent) model.Network {
	if len(events) == 0 {
		return ""
	}
	return events[0].Network
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
)

const blockEventsQuery = `
SELECT network, kind, height, hash, parent_hash, relayer, recorded_at
FROM relay_block_events FINAL
WHERE network = ? AND kind = ? AND height >= ?
ORDER BY height, hash
LIMIT ?`

// BlockEvents lists archived events of one kind from fromHeight upwards.
func (r *Repository) BlockEvents(
	ctx context.Context,
	network model.Network,
	kind model.BlockEventKind,
	fromHeight uint64,
	limit int,
) (events []model.BlockEvent, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_events", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, blockEventsQuery, string(network), string(kind), fromHeight, limit)
	if err != nil {
		return nil, fmt.Errorf("query block events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			e                     model.BlockEvent
			networkName, kindName string
		)
		if err = rows.Scan(&networkName, &kindName, &e.Height, &e.Hash, &e.ParentHash, &e.Relayer, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan block event: %w", err)
		}
		e.Network = model.Network(networkName)
		e.Kind = model.BlockEventKind(kindName)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block events: %w", err)
	}
	return events, nil
}

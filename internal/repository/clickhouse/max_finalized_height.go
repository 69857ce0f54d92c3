package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
)

const maxFinalizedHeightQuery = `
SELECT count() AS events, coalesce(max(height), toUInt64(0)) AS max_height
FROM relay_block_events
WHERE network = ? AND kind = ?`

// MaxFinalizedHeight returns the highest archived finalized height and
// whether any finalized event is archived at all.
func (r *Repository) MaxFinalizedHeight(ctx context.Context, network model.Network) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_finalized_height", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxFinalizedHeightQuery, string(network), string(model.BlockFinalized))
	if err != nil {
		return 0, false, fmt.Errorf("query max finalized height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, errors.New("max finalized height not found")
	}
	var events uint64
	if err = rows.Scan(&events, &height); err != nil {
		return 0, false, fmt.Errorf("scan max finalized height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max finalized height: %w", err)
	}
	return height, events > 0, nil
}

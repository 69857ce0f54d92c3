// Package archiver copies relay block events into the ClickHouse archive.
package archiver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
	"github.com/goodnatureofminers/blockrelay7000-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Config tunes the archive writer. Zero values take defaults.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
	QueueSize     int
	BackfillChunk int
}

func (c Config) withDefaults() Config {
	if c.FlushSize <= 0 {
		c.FlushSize = defaultFlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultFlushInterval
	}
	if c.FlushRPS <= 0 {
		c.FlushRPS = defaultFlushRPS
	}
	if c.QueueSize <= 0 {
		c.QueueSize = defaultQueueSize
	}
	if c.BackfillChunk <= 0 {
		c.BackfillChunk = defaultBackfillChunk
	}
	return c
}

// Service archives relay events. It is a relay.EventSink.
type Service struct {
	logger        *zap.Logger
	network       model.Network
	repo          Repository
	metrics       Metrics
	batcher       *batcher.Batcher[model.BlockEvent]
	backfillChunk int
	now           func() time.Time
}

// NewService builds an archiver for network.
func NewService(
	repo Repository,
	metrics Metrics,
	network model.Network,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("archive repository is required")
	}
	if metrics == nil {
		return nil, errors.New("archiver metrics is required")
	}
	cfg = cfg.withDefaults()

	s := &Service{
		logger:        logger.With(zap.String("network", string(network))),
		network:       network,
		repo:          repo,
		metrics:       metrics,
		backfillChunk: cfg.BackfillChunk,
		now:           time.Now,
	}
	s.batcher = batcher.New(s.logger.Named("batcher"), s.flush, batcher.Config{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.FlushRPS,
		QueueSize:     cfg.QueueSize,
	})
	return s, nil
}

// Start begins flushing queued events.
func (s *Service) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes what is queued and stops.
func (s *Service) Stop() {
	s.batcher.Stop()
}

// Publish queues the events of a committed submission without blocking.
// Events that do not fit are counted and dropped; Backfill recovers the
// finalized ones.
func (s *Service) Publish(_ context.Context, res *relay.SubmitResult) {
	if res == nil {
		return
	}
	now := s.now().UTC()
	events := make([]model.BlockEvent, 0, len(res.Added)+len(res.Finalized))
	for _, e := range res.Added {
		events = append(events, s.event(model.BlockAdded, e, now))
	}
	for _, e := range res.Finalized {
		events = append(events, s.event(model.BlockFinalized, e, now))
	}

	for i, e := range events {
		if err := s.batcher.TryAdd(e); err != nil {
			dropped := len(events) - i
			s.metrics.ObserveDropped(dropped)
			s.logger.Warn("archive queue rejected events", zap.Int("dropped", dropped), zap.Error(err))
			return
		}
	}
}

// Backfill archives finalized headers the archive is missing, from the
// highest archived finalized height (or the earliest retained height) up
// to the relay's finalized height. It returns the number of events written.
func (s *Service) Backfill(ctx context.Context, r Relay) (int, error) {
	st, err := r.Status(ctx)
	if err != nil {
		return 0, fmt.Errorf("relay status: %w", err)
	}
	if !st.Initialized {
		return 0, nil
	}

	from := st.EarliestHeight
	archived, ok, err := s.repo.MaxFinalizedHeight(ctx, s.network)
	if err != nil {
		return 0, fmt.Errorf("archived height: %w", err)
	}
	if ok {
		from = max(from, archived+1)
	}
	if from > st.FinalizedHeight {
		return 0, nil
	}
	s.logger.Info("backfilling finalized headers",
		zap.Uint64("from", from),
		zap.Uint64("to", st.FinalizedHeight))

	written := 0
	chunk := make([]model.BlockEvent, 0, s.backfillChunk)
	now := s.now().UTC()
	for height := from; height <= st.FinalizedHeight; height++ {
		block, err := r.FinalizedBlock(ctx, height)
		if err != nil {
			return written, fmt.Errorf("finalized block %d: %w", height, err)
		}
		chunk = append(chunk, s.event(model.BlockFinalized, block, now))
		if len(chunk) < s.backfillChunk && height < st.FinalizedHeight {
			continue
		}
		if err := s.flush(ctx, chunk); err != nil {
			return written, err
		}
		written += len(chunk)
		chunk = chunk[:0]
	}
	return written, nil
}

func (s *Service) flush(ctx context.Context, events []model.BlockEvent) error {
	started := time.Now()
	err := s.repo.InsertBlockEvents(ctx, events)
	s.metrics.ObserveFlush(err, len(events), started)
	if err != nil {
		return fmt.Errorf("archive %d events: %w", len(events), err)
	}
	return nil
}

func (s *Service) event(kind model.BlockEventKind, e relay.BlockEvent, at time.Time) model.BlockEvent {
	return model.BlockEvent{
		Network:    s.network,
		Kind:       kind,
		Height:     e.Height,
		Hash:       e.Hash.String(),
		ParentHash: e.Parent.String(),
		Relayer:    e.Relayer,
		RecordedAt: at,
	}
}

// Package relayer follows a bitcoin node and submits its headers to the relay.
package relayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/clock"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
	"github.com/goodnatureofminers/blockrelay7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

var (
	// ErrDiverged means the node disagrees with a finalized relay header.
	ErrDiverged = errors.New("node chain diverges from finalized relay chain")
	// ErrReorg means the node switched branches while headers were fetched.
	ErrReorg = errors.New("node reorganized during fetch")
)

// Config tunes a relayer Service. Zero values take defaults.
type Config struct {
	// Relayer is recorded as the submitter of every header.
	Relayer string
	// BatchSize caps the headers of one submission.
	BatchSize int
	// MaxPerSync caps the headers fetched in one round.
	MaxPerSync int
	Workers    int

	PollInterval  time.Duration
	RetryInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.MaxPerSync <= 0 {
		c.MaxPerSync = defaultMaxPerSync
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkerCount
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = defaultRetryInterval
	}
	return c
}

// Service keeps the relay in step with a node.
type Service struct {
	logger        *zap.Logger
	relay         Relay
	source        HeaderSource
	metrics       Metrics
	name          string
	batchSize     int
	maxPerSync    int
	workers       int
	pollInterval  time.Duration
	retryInterval time.Duration
	wait          func(context.Context, time.Duration, <-chan struct{}) error
	blockSignal   <-chan struct{}
}

// NewService builds a Service. blockSignal may be nil, in which case the
// service only polls.
func NewService(
	r Relay,
	source HeaderSource,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
	blockSignal <-chan struct{},
) (*Service, error) {
	if r == nil {
		return nil, errors.New("relay is required")
	}
	if source == nil {
		return nil, errors.New("header source is required")
	}
	if metrics == nil {
		return nil, errors.New("relayer metrics is required")
	}
	if cfg.Relayer == "" {
		return nil, errors.New("relayer name is required")
	}
	cfg = cfg.withDefaults()

	return &Service{
		logger:        logger.With(zap.String("relayer", cfg.Relayer)),
		relay:         r,
		source:        source,
		metrics:       metrics,
		name:          cfg.Relayer,
		batchSize:     cfg.BatchSize,
		maxPerSync:    cfg.MaxPerSync,
		workers:       cfg.Workers,
		pollInterval:  cfg.PollInterval,
		retryInterval: cfg.RetryInterval,
		wait:          clock.Wait,
		blockSignal:   blockSignal,
	}, nil
}

// Run syncs until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("sync round failed, backing off", zap.Error(err), zap.Duration("sleep", s.retryInterval))
			if waitErr := s.wait(ctx, s.retryInterval, nil); waitErr != nil {
				return waitErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	submitted, caughtUp, err := s.sync(ctx)
	s.metrics.ObserveSync(err, submitted, started)
	if err != nil {
		return err
	}
	if !caughtUp {
		return nil
	}
	s.logger.Debug("relay caught up with node; waiting", zap.Duration("sleep", s.pollInterval))
	return s.wait(ctx, s.pollInterval, s.blockSignal)
}

// sync submits one round of node headers and reports whether the relay
// reached the node tip.
func (s *Service) sync(ctx context.Context) (int, bool, error) {
	st, err := s.relay.Status(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("relay status: %w", err)
	}
	if !st.Initialized {
		return 0, false, relay.ErrNotInitialized
	}
	best, err := s.source.BestHeight(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("node best height: %w", err)
	}
	s.metrics.ObserveHeights(best, st.LastSubmittedHeight)

	anchor, err := s.commonAncestor(ctx, st, best)
	if err != nil {
		return 0, false, err
	}
	if anchor >= best {
		return 0, true, nil
	}

	to := min(best, anchor+uint64(s.maxPerSync))
	headers, err := s.fetch(ctx, anchor, to)
	if err != nil {
		return 0, false, err
	}

	submitted, err := s.submit(ctx, st.EpochLength, anchor, headers)
	switch {
	case errors.Is(err, relay.ErrDuplicateHeader), errors.Is(err, relay.ErrOutdatedHeader):
		s.logger.Info("relay moved under us; resyncing", zap.Error(err))
		return submitted, false, nil
	case err != nil:
		return submitted, false, err
	}
	return submitted, to == best, nil
}

// commonAncestor returns the highest node height whose header the relay
// already stores. It never looks below the finalized height.
func (s *Service) commonAncestor(ctx context.Context, st relay.Status, best uint64) (uint64, error) {
	for height := min(best, st.LastSubmittedHeight); ; height-- {
		hash, err := s.source.HashAtHeight(ctx, height)
		if err != nil {
			return 0, fmt.Errorf("node hash at %d: %w", height, err)
		}
		known, err := s.relay.FindHeight(ctx, hash)
		switch {
		case err == nil && known == height:
			return height, nil
		case err != nil && !errors.Is(err, relay.ErrUnknownReference):
			return 0, fmt.Errorf("relay height of %s: %w", hash, err)
		}
		if height <= st.FinalizedHeight {
			return 0, fmt.Errorf("%w: height %d hash %s", ErrDiverged, height, hash)
		}
	}
}

// fetch returns the node headers at heights from..to, checking they form
// one chain.
func (s *Service) fetch(ctx context.Context, from, to uint64) ([]*wire.BlockHeader, error) {
	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}
	headers, err := workerpool.Map(ctx, s.workers, heights, s.source.HeaderByHeight)
	if err != nil {
		return nil, fmt.Errorf("fetch headers %d-%d: %w", from, to, err)
	}
	for i := 1; i < len(headers); i++ {
		if headers[i].PrevBlock != headers[i-1].BlockHash() {
			return nil, fmt.Errorf("%w: header at %d does not extend %d", ErrReorg, from+uint64(i), from+uint64(i)-1)
		}
	}
	return headers, nil
}

// submit sends headers[1:] on top of headers[0], stored at anchorHeight.
// A submission never crosses a retarget boundary; one that starts a
// period carries the previous period's first and last header.
func (s *Service) submit(ctx context.Context, epoch, anchorHeight uint64, headers []*wire.BlockHeader) (int, error) {
	submitted := 0
	prev := headers[0]
	rest := headers[1:]
	height := anchorHeight + 1
	for len(rest) > 0 {
		opensPeriod := height%epoch == 0
		limit := epoch - height%epoch
		n := min(len(rest), s.batchSize)
		if uint64(n) > limit {
			n = int(limit)
		}
		segment := rest[:n]

		var (
			res *relay.SubmitResult
			err error
		)
		if opensPeriod {
			start, ferr := s.source.HeaderByHeight(ctx, height-epoch)
			if ferr != nil {
				return submitted, fmt.Errorf("period start at %d: %w", height-epoch, ferr)
			}
			res, err = s.relay.AddHeadersWithRetarget(ctx, btc.SerializeHeader(start), btc.SerializeHeader(prev), btc.JoinHeaders(segment...), s.name)
		} else {
			res, err = s.relay.AddHeaders(ctx, btc.SerializeHeader(prev), btc.JoinHeaders(segment...), s.name)
		}
		if err != nil {
			return submitted, fmt.Errorf("submit headers %d-%d: %w", height, height+uint64(n)-1, err)
		}

		s.logger.Info("headers relayed",
			zap.Uint64("from", height),
			zap.Uint64("to", height+uint64(n)-1),
			zap.Bool("retarget", opensPeriod),
			zap.Uint64("finalized_height", res.FinalizedHeight),
		)
		submitted += n
		height += uint64(n)
		prev = segment[n-1]
		rest = rest[n:]
	}
	return submitted, nil
}

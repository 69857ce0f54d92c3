package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
	"go.uber.org/zap"
)

type submission struct {
	op          string
	anchor      []byte
	periodStart []byte
	headers     []byte
	relayer     string
	retarget    bool
	privileged  bool
}

// AddHeaders appends headers chained onto the stored header anchor.
func (r *Relay) AddHeaders(ctx context.Context, anchor, headers []byte, relayer string) (*SubmitResult, error) {
	return r.submit(ctx, submission{
		op:      opAddHeaders,
		anchor:  anchor,
		headers: headers,
		relayer: relayer,
	})
}

// AddHeadersWithRetarget appends headers whose first element opens a new
// retarget period. periodStart and periodEnd are the first and last
// headers of the period that ends; periodEnd is the anchor.
func (r *Relay) AddHeadersWithRetarget(ctx context.Context, periodStart, periodEnd, headers []byte, relayer string) (*SubmitResult, error) {
	return r.submit(ctx, submission{
		op:          opAddHeadersWithRetarget,
		anchor:      periodEnd,
		periodStart: periodStart,
		headers:     headers,
		relayer:     relayer,
		retarget:    true,
	})
}

// OwnerAddHeaders is AddHeaders for the relay operator. It ignores pause
// and may replace finalized headers with a competing branch buried at
// least F blocks deep.
func (r *Relay) OwnerAddHeaders(ctx context.Context, token string, anchor, headers []byte, relayer string) (*SubmitResult, error) {
	if err := r.authorize(ctx, token); err != nil {
		return nil, err
	}
	return r.submit(ctx, submission{
		op:         opOwnerAddHeaders,
		anchor:     anchor,
		headers:    headers,
		relayer:    relayer,
		privileged: true,
	})
}

// OwnerAddHeadersWithRetarget is the privileged AddHeadersWithRetarget.
func (r *Relay) OwnerAddHeadersWithRetarget(ctx context.Context, token string, periodStart, periodEnd, headers []byte, relayer string) (*SubmitResult, error) {
	if err := r.authorize(ctx, token); err != nil {
		return nil, err
	}
	return r.submit(ctx, submission{
		op:          opOwnerAddHeadersWithRetarget,
		anchor:      periodEnd,
		periodStart: periodStart,
		headers:     headers,
		relayer:     relayer,
		retarget:    true,
		privileged:  true,
	})
}

func (r *Relay) submit(ctx context.Context, s submission) (res *SubmitResult, err error) {
	started := time.Now()
	count := 0
	defer func() {
		r.metrics.ObserveSubmission(s.op, err, count, started)
		if err != nil {
			r.logger.Warn("submission rejected",
				zap.String("operation", s.op),
				zap.String("relayer", s.relayer),
				zap.Int("headers", count),
				zap.Error(err),
			)
		}
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	err = r.store.Update(func(tx store.Writer) error {
		st, err := loadState(tx)
		if err != nil {
			return err
		}
		if st.Paused && !s.privileged {
			return ErrPaused
		}

		batch, err := btc.SplitHeaders(s.headers)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		count = batch.Len()

		anchor, bits, err := r.resolveAnchor(tx, st, s)
		if err != nil {
			return err
		}

		first := anchor.Height + 1
		rewrites := first < st.NextUnfinalized
		if rewrites && !s.privileged {
			return fmt.Errorf("%w: height %d is already finalized", ErrOutdatedHeader, first)
		}

		added, tip, err := r.extend(tx, st, anchor, batch, bits, s)
		if err != nil {
			return err
		}

		res = &SubmitResult{Added: added}
		switch {
		case rewrites:
			if tip.Height < st.FinalizationParameter || tip.Height-st.FinalizationParameter < first {
				return fmt.Errorf("%w: replacing finalized height %d needs the branch to reach height %d",
					ErrOutdatedHeader, first, first+st.FinalizationParameter)
			}
			if err := r.finalize(tx, &st, tip, first, res); err != nil {
				return err
			}
			if st.LastSubmittedHeight, err = highestStored(tx, st, max(st.LastSubmittedHeight, tip.Height)); err != nil {
				return err
			}
		case tip.Height > st.LastSubmittedHeight:
			if err := r.finalize(tx, &st, tip, st.NextUnfinalized, res); err != nil {
				return err
			}
			st.LastSubmittedHeight = tip.Height
		}

		res.LastSubmittedHeight = st.LastSubmittedHeight
		res.FinalizedHeight = st.NextUnfinalized - 1
		return tx.PutState(st)
	})
	if err != nil {
		return nil, err
	}

	for _, e := range res.Added {
		r.logger.Debug("header added", zap.Uint64("height", e.Height), zap.Stringer("hash", e.Hash), zap.String("relayer", e.Relayer))
	}
	if len(res.Finalized) > 0 {
		r.metrics.ObserveFinalized(len(res.Finalized), res.Pruned)
		last := res.Finalized[len(res.Finalized)-1]
		r.logger.Info("headers finalized",
			zap.Int("count", len(res.Finalized)),
			zap.Uint64("height", last.Height),
			zap.Stringer("hash", last.Hash),
			zap.Int("pruned", res.Pruned),
		)
	}
	for _, sink := range r.sinks {
		sink.Publish(ctx, res)
	}
	return res, nil
}

// resolveAnchor finds the stored parent of the batch and the bits its
// first header must carry.
func (r *Relay) resolveAnchor(tx store.Reader, st store.State, s submission) (store.Entry, uint32, error) {
	anchorHeader, err := parseHeader(s.anchor, "anchor")
	if err != nil {
		return store.Entry{}, 0, err
	}
	anchor, ok, err := tx.Entry(btc.HeaderHash(anchorHeader))
	if err != nil {
		return store.Entry{}, 0, fmt.Errorf("load anchor: %w", err)
	}
	if !ok {
		return store.Entry{}, 0, fmt.Errorf("%w: anchor %s", ErrUnknownReference, btc.HeaderHash(anchorHeader))
	}
	if !s.retarget {
		return anchor, anchor.Header.Bits, nil
	}

	startHeader, err := parseHeader(s.periodStart, "period start")
	if err != nil {
		return store.Entry{}, 0, err
	}
	startHash := btc.HeaderHash(startHeader)
	startHeight, ok, err := tx.Height(startHash)
	if err != nil {
		return store.Entry{}, 0, fmt.Errorf("load period start: %w", err)
	}
	if !ok {
		return store.Entry{}, 0, fmt.Errorf("%w: period start %s", ErrUnknownReference, startHash)
	}

	epoch := st.EpochLength
	if anchor.Height%epoch != epoch-1 || startHeight%epoch != 0 || anchor.Height < startHeight || anchor.Height-startHeight != epoch-1 {
		return store.Entry{}, 0, fmt.Errorf("%w: period start %d end %d epoch %d",
			ErrRetargetBoundaryMismatch, startHeight, anchor.Height, epoch)
	}
	if startHeader.Bits != anchor.Header.Bits {
		return store.Entry{}, 0, fmt.Errorf("%w: period start bits %08x end bits %08x",
			ErrInvalidTarget, startHeader.Bits, anchor.Header.Bits)
	}

	bits, err := btc.ComputeRetarget(
		btc.PositionedHeader{Height: startHeight, Header: startHeader},
		btc.PositionedHeader{Height: anchor.Height, Header: &anchor.Header},
		btc.RulesFromParams(r.params, epoch),
	)
	if err != nil {
		return store.Entry{}, 0, fmt.Errorf("%w: %w", ErrRetargetBoundaryMismatch, err)
	}
	return anchor, bits, nil
}

// extend validates and stores every header of the batch in order.
func (r *Relay) extend(tx store.Writer, st store.State, anchor store.Entry, batch btc.Headers, bits uint32, s submission) ([]BlockEvent, store.Entry, error) {
	added := make([]BlockEvent, 0, batch.Len())
	prev := anchor
	for i, raw := range batch.All() {
		h, err := parseHeader(raw, fmt.Sprintf("header %d", i))
		if err != nil {
			return nil, store.Entry{}, err
		}
		height := prev.Height + 1
		hash := btc.HeaderHash(h)

		if err := r.checkHeader(h, prev, height, bits, st.EpochLength, s.retarget && i == 0); err != nil {
			return nil, store.Entry{}, fmt.Errorf("header %d at height %d: %w", i, height, err)
		}
		if _, dup, err := tx.Height(hash); err != nil {
			return nil, store.Entry{}, fmt.Errorf("lookup %s: %w", hash, err)
		} else if dup {
			return nil, store.Entry{}, fmt.Errorf("%w: %s at height %d", ErrDuplicateHeader, hash, height)
		}

		e := store.Entry{Height: height, Hash: hash, Header: *h, Relayer: s.relayer}
		if err := tx.Insert(e); err != nil {
			return nil, store.Entry{}, fmt.Errorf("store header %s: %w", hash, err)
		}
		added = append(added, BlockEvent{Height: height, Hash: hash, Parent: h.PrevBlock, Relayer: s.relayer})
		prev = e
	}
	return added, prev, nil
}

func (r *Relay) checkHeader(h *wire.BlockHeader, prev store.Entry, height uint64, bits uint32, epoch uint64, opensPeriod bool) error {
	if h.PrevBlock != prev.Hash {
		return fmt.Errorf("%w: parent %s, expected %s", ErrChainLinkBroken, h.PrevBlock, prev.Hash)
	}
	if height%epoch == 0 && !opensPeriod {
		return ErrRetargetRequired
	}
	if h.Bits != bits {
		return fmt.Errorf("%w: bits %08x, expected %08x", ErrInvalidTarget, h.Bits, bits)
	}
	if err := btc.ValidateTarget(h.Bits, r.params.PowLimit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	if !btc.CheckProofOfWork(h) {
		return ErrInvalidProofOfWork
	}
	return nil
}

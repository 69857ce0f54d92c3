package relay

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
	"go.uber.org/zap"
)

// Initialize stores the trusted genesis header and the hash of the first
// block of its retarget period. It can run once per store.
func (r *Relay) Initialize(ctx context.Context, token string, p InitParams) error {
	if err := r.authorize(ctx, token); err != nil {
		return err
	}
	if p.FinalizationParameter == 0 {
		return fmt.Errorf("%w: finalization parameter must be positive", ErrInvalidParameter)
	}
	genesis, err := parseHeader(p.GenesisHeader, "genesis header")
	if err != nil {
		return err
	}
	if err := btc.ValidateTarget(genesis.Bits, r.params.PowLimit); err != nil {
		return fmt.Errorf("%w: genesis: %w", ErrInvalidTarget, err)
	}
	if !btc.CheckProofOfWork(genesis) {
		return fmt.Errorf("%w: genesis", ErrInvalidProofOfWork)
	}

	hash := btc.HeaderHash(genesis)
	epoch := btc.EpochLengthFromParams(r.params)
	periodHeight := p.Height - p.Height%epoch
	if periodHeight == p.Height && p.PeriodStartHash != hash {
		return fmt.Errorf("%w: genesis at height %d opens its period, period start must be the genesis hash",
			ErrInvalidParameter, p.Height)
	}
	if periodHeight != p.Height && (p.PeriodStartHash == hash || p.PeriodStartHash == (chainhash.Hash{})) {
		return fmt.Errorf("%w: period start hash of height %d is required", ErrInvalidParameter, periodHeight)
	}

	err = r.store.Update(func(tx store.Writer) error {
		st, err := tx.State()
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		if st.Initialized {
			return ErrAlreadyInitialized
		}
		if err := tx.Insert(store.Entry{
			Height:    p.Height,
			Hash:      hash,
			Header:    *genesis,
			Relayer:   p.Relayer,
			Finalized: true,
		}); err != nil {
			return fmt.Errorf("store genesis: %w", err)
		}
		if periodHeight != p.Height {
			if err := tx.IndexHash(p.PeriodStartHash, periodHeight); err != nil {
				return fmt.Errorf("index period start: %w", err)
			}
		}
		return tx.PutState(store.State{
			Initialized:           true,
			InitialHeight:         p.Height,
			GenesisHash:           hash,
			LastSubmittedHeight:   p.Height,
			NextUnfinalized:       p.Height + 1,
			EarliestHeight:        p.Height,
			FinalizationParameter: p.FinalizationParameter,
			EpochLength:           epoch,
		})
	})
	if err != nil {
		return err
	}

	r.logger.Info("relay initialized",
		zap.Uint64("height", p.Height),
		zap.Stringer("genesis", hash),
		zap.Uint64("finalization_parameter", p.FinalizationParameter),
	)
	return nil
}

// Pause stops public submissions and proof checks.
func (r *Relay) Pause(ctx context.Context, token string) error {
	return r.updateState(ctx, token, "pause", func(st *store.State) error {
		st.Paused = true
		return nil
	})
}

// Unpause reverts Pause.
func (r *Relay) Unpause(ctx context.Context, token string) error {
	return r.updateState(ctx, token, "unpause", func(st *store.State) error {
		st.Paused = false
		return nil
	})
}

// SetFinalizationParameter changes the confirmation depth F. It takes
// effect with the next batch that extends the chain.
func (r *Relay) SetFinalizationParameter(ctx context.Context, token string, f uint64) error {
	return r.updateState(ctx, token, "set_finalization_parameter", func(st *store.State) error {
		if f == 0 {
			return fmt.Errorf("%w: finalization parameter must be positive", ErrInvalidParameter)
		}
		st.FinalizationParameter = f
		return nil
	})
}

// SetEpochLength changes the number of blocks per retarget period.
func (r *Relay) SetEpochLength(ctx context.Context, token string, n uint64) error {
	return r.updateState(ctx, token, "set_epoch_length", func(st *store.State) error {
		if n < 2 {
			return fmt.Errorf("%w: epoch length must be at least 2", ErrInvalidParameter)
		}
		st.EpochLength = n
		return nil
	})
}

// TrimHistory deletes finalized headers below height. The finalized tip
// is always kept so the chain can still be extended.
func (r *Relay) TrimHistory(ctx context.Context, token string, below uint64) (int, error) {
	if err := r.authorize(ctx, token); err != nil {
		return 0, err
	}

	var removed int
	err := r.store.Update(func(tx store.Writer) error {
		st, err := loadState(tx)
		if err != nil {
			return err
		}
		frontier := st.NextUnfinalized - 1
		if below > frontier {
			return fmt.Errorf("%w: cannot trim above finalized height %d", ErrInvalidParameter, frontier)
		}
		if below <= st.EarliestHeight {
			return nil
		}
		// The next retarget still needs the start of the current period.
		periodStart := frontier - frontier%st.EpochLength
		keep, err := tx.Candidates(periodStart)
		if err != nil {
			return err
		}
		if removed, err = tx.TrimBelow(below); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		if len(keep) > 0 && periodStart < below {
			if err := tx.IndexHash(keep[0].Hash, periodStart); err != nil {
				return fmt.Errorf("keep period start: %w", err)
			}
		}
		st.EarliestHeight = below
		return tx.PutState(st)
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("history trimmed", zap.Uint64("below", below), zap.Int("removed", removed))
	return removed, nil
}

func (r *Relay) updateState(ctx context.Context, token, op string, apply func(*store.State) error) error {
	if err := r.authorize(ctx, token); err != nil {
		return err
	}
	err := r.store.Update(func(tx store.Writer) error {
		st, err := loadState(tx)
		if err != nil {
			return err
		}
		if err := apply(&st); err != nil {
			return err
		}
		return tx.PutState(st)
	})
	if err != nil {
		return err
	}
	r.logger.Info("relay state updated", zap.String("operation", op))
	return nil
}

package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
)

// Status returns the current relay bookkeeping.
func (r *Relay) Status(ctx context.Context) (status Status, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveQuery(opStatus, err, started) }()
	if err = ctx.Err(); err != nil {
		return Status{}, err
	}

	err = r.store.View(func(rd store.Reader) error {
		st, err := rd.State()
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		status = statusFromState(st)
		return nil
	})
	return status, err
}

// FindHeight returns the height of a known header hash.
func (r *Relay) FindHeight(ctx context.Context, hash chainhash.Hash) (height uint64, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveQuery(opFindHeight, err, started) }()
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	err = r.store.View(func(rd store.Reader) error {
		h, ok, err := rd.Height(hash)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", hash, err)
		}
		if !ok {
			return fmt.Errorf("%w: hash %s", ErrUnknownReference, hash)
		}
		height = h
		return nil
	})
	return height, err
}

// GetBlockHeaderHash returns the hash of the forkIndex-th candidate at
// height. Index 0 is the finalized header when there is one, otherwise
// the earliest submitted candidate.
func (r *Relay) GetBlockHeaderHash(ctx context.Context, height uint64, forkIndex int) (hash chainhash.Hash, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveQuery(opBlockHeaderHash, err, started) }()
	if err = ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}
	if forkIndex < 0 {
		return chainhash.Hash{}, fmt.Errorf("%w: negative fork index", ErrMalformedInput)
	}

	err = r.store.View(func(rd store.Reader) error {
		candidates, err := rd.Candidates(height)
		if err != nil {
			return fmt.Errorf("load candidates at %d: %w", height, err)
		}
		if forkIndex >= len(candidates) {
			return fmt.Errorf("%w: no header %d at height %d", ErrUnknownReference, forkIndex, height)
		}
		hash = candidates[forkIndex].Hash
		return nil
	})
	return hash, err
}

// NumberOfCandidates returns how many headers are stored at height.
func (r *Relay) NumberOfCandidates(ctx context.Context, height uint64) (n int, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveQuery(opNumberOfCandidates, err, started) }()
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	err = r.store.View(func(rd store.Reader) error {
		candidates, err := rd.Candidates(height)
		n = len(candidates)
		return err
	})
	return n, err
}

// CheckTxProof reports whether txid is included in the finalized block at
// height, given its merkle sibling path and position.
func (r *Relay) CheckTxProof(ctx context.Context, txid chainhash.Hash, height uint64, proof []chainhash.Hash, index uint64) (ok bool, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveQuery(opCheckTxProof, err, started) }()
	if err = ctx.Err(); err != nil {
		return false, err
	}

	err = r.store.View(func(rd store.Reader) error {
		st, err := loadState(rd)
		if err != nil {
			return err
		}
		if st.Paused {
			return ErrPaused
		}
		if txid == (chainhash.Hash{}) {
			return ErrInvalidTxID
		}
		if height < st.EarliestHeight {
			return fmt.Errorf("%w: height %d, earliest retained %d", ErrBlockTooOld, height, st.EarliestHeight)
		}
		if height >= st.NextUnfinalized || height+st.FinalizationParameter > st.LastSubmittedHeight {
			return fmt.Errorf("%w: height %d", ErrNotFinalized, height)
		}

		candidates, err := rd.Candidates(height)
		if err != nil {
			return fmt.Errorf("load candidates at %d: %w", height, err)
		}
		if len(candidates) == 0 || !candidates[0].Finalized {
			return fmt.Errorf("%w: no finalized header at %d", ErrNotFinalized, height)
		}

		ok, err = btc.VerifyMerkleProof(txid, proof, index, candidates[0].Header.MerkleRoot)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		return nil
	})
	return ok, err
}

// FinalizedBlock returns the finalized header event at height.
func (r *Relay) FinalizedBlock(ctx context.Context, height uint64) (block BlockEvent, err error) {
	started := time.Now()
	defer func() { r.metrics.ObserveQuery(opFinalizedBlock, err, started) }()
	if err = ctx.Err(); err != nil {
		return BlockEvent{}, err
	}

	err = r.store.View(func(rd store.Reader) error {
		st, err := loadState(rd)
		if err != nil {
			return err
		}
		if height < st.EarliestHeight {
			return fmt.Errorf("%w: height %d, earliest retained %d", ErrBlockTooOld, height, st.EarliestHeight)
		}
		if height >= st.NextUnfinalized {
			return fmt.Errorf("%w: height %d", ErrNotFinalized, height)
		}
		candidates, err := rd.Candidates(height)
		if err != nil {
			return fmt.Errorf("load candidates at %d: %w", height, err)
		}
		if len(candidates) == 0 || !candidates[0].Finalized {
			return fmt.Errorf("%w: no finalized header at %d", ErrNotFinalized, height)
		}
		e := candidates[0]
		block = BlockEvent{Height: e.Height, Hash: e.Hash, Parent: e.Header.PrevBlock, Relayer: e.Relayer}
		return nil
	})
	return block, err
}

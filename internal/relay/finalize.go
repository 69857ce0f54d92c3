package relay

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay/store"
)

// finalize fixes every height in [from, tip.Height-F] to the ancestor of
// tip, pruning the competing candidates there together with all of their
// descendants.
func (r *Relay) finalize(tx store.Writer, st *store.State, tip store.Entry, from uint64, res *SubmitResult) error {
	depth := st.FinalizationParameter
	if tip.Height < depth || tip.Height-depth < from {
		return nil
	}
	to := tip.Height - depth

	path, err := ancestors(tx, tip, from, to)
	if err != nil {
		return err
	}
	for _, keep := range path {
		pruned, err := settle(tx, keep)
		if err != nil {
			return err
		}
		res.Pruned += pruned
		if keep.Finalized {
			continue
		}
		if err := tx.MarkFinalized(keep.Hash); err != nil {
			return fmt.Errorf("finalize %s: %w", keep.Hash, err)
		}
		res.Finalized = append(res.Finalized, BlockEvent{
			Height:  keep.Height,
			Hash:    keep.Hash,
			Parent:  keep.Header.PrevBlock,
			Relayer: keep.Relayer,
		})
	}
	st.NextUnfinalized = to + 1
	return nil
}

// ancestors returns the entries of tip's branch at heights from..to in
// ascending order.
func ancestors(tx store.Reader, tip store.Entry, from, to uint64) ([]store.Entry, error) {
	path := make([]store.Entry, to-from+1)
	cur := tip
	for {
		if cur.Height <= to {
			path[cur.Height-from] = cur
			if cur.Height == from {
				return path, nil
			}
		}
		parent, ok, err := tx.Entry(cur.Header.PrevBlock)
		if err != nil {
			return nil, fmt.Errorf("load ancestor of %s: %w", cur.Hash, err)
		}
		if !ok {
			return nil, fmt.Errorf("ancestor of %s at height %d: %w", cur.Hash, cur.Height-1, store.ErrNotFound)
		}
		cur = parent
	}
}

// settle removes every candidate at keep's height other than keep.
func settle(tx store.Writer, keep store.Entry) (int, error) {
	candidates, err := tx.Candidates(keep.Height)
	if err != nil {
		return 0, fmt.Errorf("load candidates at %d: %w", keep.Height, err)
	}
	pruned := 0
	for _, c := range candidates {
		if c.Hash == keep.Hash {
			continue
		}
		n, err := pruneBranch(tx, c)
		if err != nil {
			return 0, err
		}
		pruned += n
	}
	return pruned, nil
}

// pruneBranch removes root and all of its stored descendants.
func pruneBranch(tx store.Writer, root store.Entry) (int, error) {
	if err := tx.Remove(root.Hash); err != nil {
		return 0, fmt.Errorf("prune %s: %w", root.Hash, err)
	}
	removed := 1
	doomed := map[chainhash.Hash]struct{}{root.Hash: {}}
	for height := root.Height + 1; len(doomed) > 0; height++ {
		candidates, err := tx.Candidates(height)
		if err != nil {
			return 0, fmt.Errorf("load candidates at %d: %w", height, err)
		}
		next := make(map[chainhash.Hash]struct{})
		for _, c := range candidates {
			if _, ok := doomed[c.Header.PrevBlock]; !ok {
				continue
			}
			if err := tx.Remove(c.Hash); err != nil {
				return 0, fmt.Errorf("prune %s: %w", c.Hash, err)
			}
			next[c.Hash] = struct{}{}
			removed++
		}
		doomed = next
	}
	return removed, nil
}

// highestStored walks down from height to the highest height that still
// holds a header.
func highestStored(tx store.Reader, st store.State, height uint64) (uint64, error) {
	for height > st.InitialHeight {
		candidates, err := tx.Candidates(height)
		if err != nil {
			return 0, fmt.Errorf("load candidates at %d: %w", height, err)
		}
		if len(candidates) > 0 {
			return height, nil
		}
		height--
	}
	return height, nil
}

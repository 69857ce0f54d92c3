package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dolthub/swiss"
)

const initialIndexSize = 4096

// Memory keeps the tree in process: a small slice of entries per height
// and a swiss table from hash to height. Update journals the previous
// value of everything it touches and restores it when fn fails.
type Memory struct {
	mu      sync.RWMutex
	state   State
	heights map[uint64][]Entry
	index   *swiss.Map[chainhash.Hash, uint64]
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		heights: make(map[uint64][]Entry),
		index:   swiss.NewMap[chainhash.Hash, uint64](initialIndexSize),
	}
}

// View runs fn under the read lock.
func (m *Memory) View(fn func(Reader) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(memReader{m: m})
}

// Update runs fn under the write lock and rolls back on error or panic.
func (m *Memory) Update(fn func(Writer) error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{
		memReader: memReader{m: m},
		heights:   make(map[uint64]heightSnapshot),
		index:     make(map[chainhash.Hash]indexSnapshot),
	}
	committed := false
	defer func() {
		if !committed {
			tx.rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

type memReader struct {
	m *Memory
}

func (r memReader) State() (State, error) {
	return r.m.state, nil
}

func (r memReader) Candidates(height uint64) ([]Entry, error) {
	return slices.Clone(r.m.heights[height]), nil
}

func (r memReader) Entry(hash chainhash.Hash) (Entry, bool, error) {
	height, ok := r.m.index.Get(hash)
	if !ok {
		return Entry{}, false, nil
	}
	for _, e := range r.m.heights[height] {
		if e.Hash == hash {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

func (r memReader) Height(hash chainhash.Hash) (uint64, bool, error) {
	height, ok := r.m.index.Get(hash)
	return height, ok, nil
}

type heightSnapshot struct {
	entries []Entry
	present bool
}

type indexSnapshot struct {
	height  uint64
	present bool
}

type memTx struct {
	memReader
	state   *State
	heights map[uint64]heightSnapshot
	index   map[chainhash.Hash]indexSnapshot
}

func (tx *memTx) touchHeight(height uint64) {
	if _, ok := tx.heights[height]; ok {
		return
	}
	entries, present := tx.m.heights[height]
	tx.heights[height] = heightSnapshot{entries: slices.Clone(entries), present: present}
}

func (tx *memTx) touchIndex(hash chainhash.Hash) {
	if _, ok := tx.index[hash]; ok {
		return
	}
	height, present := tx.m.index.Get(hash)
	tx.index[hash] = indexSnapshot{height: height, present: present}
}

func (tx *memTx) rollback() {
	if tx.state != nil {
		tx.m.state = *tx.state
	}
	for height, snap := range tx.heights {
		if snap.present {
			tx.m.heights[height] = snap.entries
		} else {
			delete(tx.m.heights, height)
		}
	}
	for hash, snap := range tx.index {
		if snap.present {
			tx.m.index.Put(hash, snap.height)
		} else {
			tx.m.index.Delete(hash)
		}
	}
}

func (tx *memTx) PutState(s State) error {
	if tx.state == nil {
		prev := tx.m.state
		tx.state = &prev
	}
	tx.m.state = s
	return nil
}

func (tx *memTx) Insert(e Entry) error {
	if tx.m.index.Has(e.Hash) {
		return fmt.Errorf("insert %s: %w", e.Hash, ErrExists)
	}
	tx.touchHeight(e.Height)
	tx.touchIndex(e.Hash)

	entries := tx.m.heights[e.Height]
	if e.Finalized {
		entries = slices.Insert(entries, 0, e)
	} else {
		entries = append(entries, e)
	}
	tx.m.heights[e.Height] = entries
	tx.m.index.Put(e.Hash, e.Height)
	return nil
}

func (tx *memTx) Remove(hash chainhash.Hash) error {
	height, ok := tx.m.index.Get(hash)
	if !ok {
		return fmt.Errorf("remove %s: %w", hash, ErrNotFound)
	}
	entries := tx.m.heights[height]
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.Hash == hash })
	if i < 0 {
		return fmt.Errorf("remove %s: %w", hash, ErrNotFound)
	}
	tx.touchHeight(height)
	tx.touchIndex(hash)

	entries = slices.Delete(slices.Clone(entries), i, i+1)
	if len(entries) == 0 {
		delete(tx.m.heights, height)
	} else {
		tx.m.heights[height] = entries
	}
	tx.m.index.Delete(hash)
	return nil
}

func (tx *memTx) MarkFinalized(hash chainhash.Hash) error {
	height, ok := tx.m.index.Get(hash)
	if !ok {
		return fmt.Errorf("finalize %s: %w", hash, ErrNotFound)
	}
	entries := tx.m.heights[height]
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.Hash == hash })
	if i < 0 {
		return fmt.Errorf("finalize %s: %w", hash, ErrNotFound)
	}
	tx.touchHeight(height)

	e := entries[i]
	e.Finalized = true
	entries = slices.Delete(slices.Clone(entries), i, i+1)
	tx.m.heights[height] = slices.Insert(entries, 0, e)
	return nil
}

func (tx *memTx) IndexHash(hash chainhash.Hash, height uint64) error {
	if tx.m.index.Has(hash) {
		return fmt.Errorf("index %s: %w", hash, ErrExists)
	}
	tx.touchIndex(hash)
	tx.m.index.Put(hash, height)
	return nil
}

func (tx *memTx) TrimBelow(height uint64) (int, error) {
	removed := 0
	for h, entries := range tx.m.heights {
		if h >= height {
			continue
		}
		for _, e := range entries {
			tx.touchIndex(e.Hash)
			tx.m.index.Delete(e.Hash)
			removed++
		}
		tx.touchHeight(h)
		delete(tx.m.heights, h)
	}
	return removed, nil
}

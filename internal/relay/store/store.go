// Package store persists the relay's header tree. Every implementation
// gives Update all-or-nothing semantics and lets View observe a
// consistent snapshot.
package store

import (
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

// Entry is a stored header with its chain position.
type Entry struct {
	Height    uint64
	Hash      chainhash.Hash
	Header    wire.BlockHeader
	Relayer   string
	Finalized bool
}

// State is the relay's scalar bookkeeping.
type State struct {
	Initialized           bool
	InitialHeight         uint64
	GenesisHash           chainhash.Hash
	LastSubmittedHeight   uint64
	NextUnfinalized       uint64
	EarliestHeight        uint64
	FinalizationParameter uint64
	EpochLength           uint64
	Paused                bool
}

type (
	Reader interface {
		State() (State, error)
		// Candidates lists the entries at height, the finalized one first,
		// the rest in submission order.
		Candidates(height uint64) ([]Entry, error)
		Entry(hash chainhash.Hash) (Entry, bool, error)
		// Height resolves any indexed hash, including hashes indexed without
		// a stored header.
		Height(hash chainhash.Hash) (uint64, bool, error)
	}

	Writer interface {
		Reader
		PutState(s State) error
		Insert(e Entry) error
		Remove(hash chainhash.Hash) error
		MarkFinalized(hash chainhash.Hash) error
		IndexHash(hash chainhash.Hash, height uint64) error
		// TrimBelow drops every entry below height together with its hash
		// index. Hashes indexed without a stored header are kept. It
		// returns how many entries were removed.
		TrimBelow(height uint64) (int, error)
	}

	Store interface {
		View(fn func(Reader) error) error
		Update(fn func(Writer) error) error
		Close() error
	}
)

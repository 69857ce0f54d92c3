package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketState   = []byte("relay_state")
	bucketEntries = []byte("entries_by_hash")
	bucketChain   = []byte("hashes_by_height")
	bucketIndex   = []byte("height_by_hash")

	stateKey = []byte("state")
)

// Bolt stores the tree in a bbolt file. Update maps to a read-write
// transaction, View to a read-only one.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketState, bucketEntries, bucketChain, bucketIndex} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", b, err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) View(fn func(Reader) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(boltTx{tx: tx})
	})
}

func (s *Bolt) Update(fn func(Writer) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(boltTx{tx: tx})
	})
}

func (s *Bolt) Close() error {
	return s.db.Close()
}

type boltTx struct {
	tx *bolt.Tx
}

func (b boltTx) State() (State, error) {
	raw := b.tx.Bucket(bucketState).Get(stateKey)
	if raw == nil {
		return State{}, nil
	}
	return decodeState(raw)
}

func (b boltTx) Candidates(height uint64) ([]Entry, error) {
	prefix := heightKey(height)
	entries := b.tx.Bucket(bucketEntries)

	var out []Entry
	c := b.tx.Bucket(bucketChain).Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		hash, err := chainhash.NewHash(v)
		if err != nil {
			return nil, fmt.Errorf("chain key %x: %w", k, err)
		}
		raw := entries.Get(v)
		if raw == nil {
			return nil, fmt.Errorf("entry %s: %w", hash, errCorrupt)
		}
		e, _, err := decodeEntry(*hash, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		switch {
		case a.Finalized == b.Finalized:
			return 0
		case a.Finalized:
			return -1
		default:
			return 1
		}
	})
	return out, nil
}

func (b boltTx) Entry(hash chainhash.Hash) (Entry, bool, error) {
	raw := b.tx.Bucket(bucketEntries).Get(hash[:])
	if raw == nil {
		return Entry{}, false, nil
	}
	e, _, err := decodeEntry(hash, raw)
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

func (b boltTx) Height(hash chainhash.Hash) (uint64, bool, error) {
	raw := b.tx.Bucket(bucketIndex).Get(hash[:])
	if raw == nil {
		return 0, false, nil
	}
	if len(raw) != heightKeySize {
		return 0, false, fmt.Errorf("index %s: %w", hash, errCorrupt)
	}
	return binary.BigEndian.Uint64(raw), true, nil
}

func (b boltTx) PutState(s State) error {
	return b.tx.Bucket(bucketState).Put(stateKey, encodeState(s))
}

func (b boltTx) Insert(e Entry) error {
	index := b.tx.Bucket(bucketIndex)
	if index.Get(e.Hash[:]) != nil {
		return fmt.Errorf("insert %s: %w", e.Hash, ErrExists)
	}
	chain := b.tx.Bucket(bucketChain)
	seq, err := chain.NextSequence()
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if err := chain.Put(chainKey(e.Height, seq), e.Hash[:]); err != nil {
		return fmt.Errorf("put chain key: %w", err)
	}
	if err := b.tx.Bucket(bucketEntries).Put(e.Hash[:], encodeEntry(e, seq)); err != nil {
		return fmt.Errorf("put entry: %w", err)
	}
	if err := index.Put(e.Hash[:], heightKey(e.Height)); err != nil {
		return fmt.Errorf("put index: %w", err)
	}
	return nil
}

func (b boltTx) Remove(hash chainhash.Hash) error {
	entries := b.tx.Bucket(bucketEntries)
	raw := entries.Get(hash[:])
	if raw == nil {
		return fmt.Errorf("remove %s: %w", hash, ErrNotFound)
	}
	e, seq, err := decodeEntry(hash, raw)
	if err != nil {
		return err
	}
	if err := b.tx.Bucket(bucketChain).Delete(chainKey(e.Height, seq)); err != nil {
		return fmt.Errorf("delete chain key: %w", err)
	}
	if err := entries.Delete(hash[:]); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if err := b.tx.Bucket(bucketIndex).Delete(hash[:]); err != nil {
		return fmt.Errorf("delete index: %w", err)
	}
	return nil
}

func (b boltTx) MarkFinalized(hash chainhash.Hash) error {
	entries := b.tx.Bucket(bucketEntries)
	raw := entries.Get(hash[:])
	if raw == nil {
		return fmt.Errorf("finalize %s: %w", hash, ErrNotFound)
	}
	e, seq, err := decodeEntry(hash, raw)
	if err != nil {
		return err
	}
	e.Finalized = true
	return entries.Put(hash[:], encodeEntry(e, seq))
}

func (b boltTx) IndexHash(hash chainhash.Hash, height uint64) error {
	index := b.tx.Bucket(bucketIndex)
	if index.Get(hash[:]) != nil {
		return fmt.Errorf("index %s: %w", hash, ErrExists)
	}
	return index.Put(hash[:], heightKey(height))
}

func (b boltTx) TrimBelow(height uint64) (int, error) {
	// bbolt forbids mutating a bucket while iterating it.
	var chainKeys, hashes [][]byte
	c := b.tx.Bucket(bucketChain).Cursor()
	for k, v := c.First(); k != nil && binary.BigEndian.Uint64(k[:heightKeySize]) < height; k, v = c.Next() {
		chainKeys = append(chainKeys, slices.Clone(k))
		hashes = append(hashes, slices.Clone(v))
	}

	chain := b.tx.Bucket(bucketChain)
	entries := b.tx.Bucket(bucketEntries)
	index := b.tx.Bucket(bucketIndex)
	for i, k := range chainKeys {
		if err := chain.Delete(k); err != nil {
			return 0, fmt.Errorf("delete chain key: %w", err)
		}
		if err := entries.Delete(hashes[i]); err != nil {
			return 0, fmt.Errorf("delete entry: %w", err)
		}
		if err := index.Delete(hashes[i]); err != nil {
			return 0, fmt.Errorf("delete index: %w", err)
		}
	}
	return len(chainKeys), nil
}

// Package btctest builds minable header chains on low difficulty networks
// for tests.
package btctest

import (
	"encoding/binary"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/btc"
)

// Spacing is the timestamp distance between consecutive generated headers.
const Spacing = 10 * time.Minute

// Genesis returns a copy of the regression test network genesis header.
func Genesis() *wire.BlockHeader {
	h := chaincfg.RegressionNetParams.GenesisBlock.Header
	return &h
}

// Mine increments the nonce of h until the header meets its own target.
func Mine(h wire.BlockHeader) *wire.BlockHeader {
	for !btc.CheckProofOfWork(&h) {
		h.Nonce++
	}
	return &h
}

// Child mines a header on top of parent. Distinct tags give distinct
// siblings.
func Child(parent *wire.BlockHeader, bits uint32, ts time.Time, tag uint32) *wire.BlockHeader {
	parentHash := parent.BlockHash()
	var seed [chainhash.HashSize + 4]byte
	copy(seed[:], parentHash[:])
	binary.LittleEndian.PutUint32(seed[chainhash.HashSize:], tag)

	return Mine(wire.BlockHeader{
		Version:    4,
		PrevBlock:  parentHash,
		MerkleRoot: chainhash.DoubleHashH(seed[:]),
		Timestamp:  ts,
		Bits:       bits,
	})
}

// Extend mines n headers on top of parent, inheriting its bits and
// advancing the timestamp by Spacing each step.
func Extend(parent *wire.BlockHeader, n int, tag uint32) []*wire.BlockHeader {
	out := make([]*wire.BlockHeader, 0, n)
	prev := parent
	for i := 0; i < n; i++ {
		next := Child(prev, prev.Bits, prev.Timestamp.Add(Spacing), tag)
		out = append(out, next)
		prev = next
	}
	return out
}

// BreakPoW returns a copy of h whose hash does not meet its target.
func BreakPoW(h *wire.BlockHeader) *wire.BlockHeader {
	c := *h
	c.Nonce++
	for btc.CheckProofOfWork(&c) {
		c.Nonce++
	}
	return &c
}

// Concat serializes headers back to back.
func Concat(headers ...*wire.BlockHeader) []byte {
	return btc.JoinHeaders(headers...)
}

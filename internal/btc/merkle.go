package btc

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// VerifyMerkleProof reports whether txid is committed to by root through
// the sibling path proof. Bit i of index selects the side at level i: 0
// means the running hash is the left child.
func VerifyMerkleProof(txid chainhash.Hash, proof []chainhash.Hash, index uint64, root chainhash.Hash) (bool, error) {
	if txid == (chainhash.Hash{}) {
		return false, ErrInvalidTxID
	}
	if len(proof) < 64 && index>>uint(len(proof)) != 0 {
		return false, fmt.Errorf("%w: index %d with %d siblings", ErrProofIndexOutOfRange, index, len(proof))
	}

	cur := txid
	for i, sibling := range proof {
		if i < 64 && (index>>uint(i))&1 == 1 {
			cur = hashPair(sibling, cur)
		} else {
			cur = hashPair(cur, sibling)
		}
	}
	return cur == root, nil
}

// MerkleRoot computes the Bitcoin merkle root of the given leaves,
// duplicating the last node of odd-sized levels.
func MerkleRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}
	level := append([]chainhash.Hash(nil), leaves...)
	for len(level) > 1 {
		level = nextLevel(level)
	}
	return level[0]
}

// MerkleProof returns the sibling path for the leaf at index.
func MerkleProof(leaves []chainhash.Hash, index int) ([]chainhash.Hash, error) {
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("%w: leaf %d of %d", ErrProofIndexOutOfRange, index, len(leaves))
	}
	var proof []chainhash.Hash
	level := append([]chainhash.Hash(nil), leaves...)
	for len(level) > 1 {
		sibling := index ^ 1
		if sibling >= len(level) {
			sibling = index
		}
		proof = append(proof, level[sibling])
		level = nextLevel(level)
		index /= 2
	}
	return proof, nil
}

func nextLevel(level []chainhash.Hash) []chainhash.Hash {
	next := make([]chainhash.Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		right := level[i]
		if i+1 < len(level) {
			right = level[i+1]
		}
		next = append(next, hashPair(level[i], right))
	}
	return next
}

func hashPair(left, right chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:])
}

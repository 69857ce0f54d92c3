package btc

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
)

// BitsToTarget expands a compact difficulty encoding.
func BitsToTarget(bits uint32) *big.Int {
	return blockchain.CompactToBig(bits)
}

// TargetToBits encodes target in compact form.
func TargetToBits(target *big.Int) uint32 {
	return blockchain.BigToCompact(target)
}

// ValidateTarget rejects zero, negative and above-limit targets.
func ValidateTarget(bits uint32, powLimit *big.Int) error {
	target := BitsToTarget(bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("%w: bits %08x encode a non-positive target", ErrInvalidTarget, bits)
	}
	if powLimit != nil && target.Cmp(powLimit) > 0 {
		return fmt.Errorf("%w: bits %08x exceed the proof-of-work limit", ErrInvalidTarget, bits)
	}
	return nil
}

// CheckProofOfWork reports whether the header hash, read as a little
// endian number, is strictly below the target encoded in its bits.
func CheckProofOfWork(h *wire.BlockHeader) bool {
	target := BitsToTarget(h.Bits)
	if target.Sign() <= 0 {
		return false
	}
	hash := h.BlockHash()
	return blockchain.HashToBig(&hash).Cmp(target) < 0
}

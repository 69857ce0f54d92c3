package btc

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// DefaultEpochLength is the number of blocks between difficulty adjustments.
const DefaultEpochLength = 2016

// PositionedHeader is a header together with its chain height.
type PositionedHeader struct {
	Height uint64
	Header *wire.BlockHeader
}

// RetargetRules carries the network constants used by ComputeRetarget.
type RetargetRules struct {
	EpochLength      uint64
	TargetSpacing    time.Duration
	AdjustmentFactor int64
	PowLimit         *big.Int
}

// RulesFromParams derives retarget rules for a network with the given
// epoch length.
func RulesFromParams(params *chaincfg.Params, epochLength uint64) RetargetRules {
	return RetargetRules{
		EpochLength:      epochLength,
		TargetSpacing:    params.TargetTimePerBlock,
		AdjustmentFactor: params.RetargetAdjustmentFactor,
		PowLimit:         params.PowLimit,
	}
}

// EpochLengthFromParams returns the number of blocks per retarget window
// of params.
func EpochLengthFromParams(params *chaincfg.Params) uint64 {
	if params.TargetTimePerBlock <= 0 {
		return DefaultEpochLength
	}
	return uint64(params.TargetTimespan / params.TargetTimePerBlock)
}

// ExpectedTimespan is the number of seconds an epoch should take.
func (r RetargetRules) ExpectedTimespan() int64 {
	return int64(r.EpochLength) * int64(r.TargetSpacing/time.Second)
}

// ComputeRetarget returns the compact bits the first header of the next
// epoch must carry, given the first and last headers of the ending epoch.
func ComputeRetarget(start, end PositionedHeader, rules RetargetRules) (uint32, error) {
	if rules.EpochLength < 2 {
		return 0, fmt.Errorf("%w: epoch length %d", ErrRetargetBoundaryMismatch, rules.EpochLength)
	}
	if end.Height < start.Height || end.Height-start.Height != rules.EpochLength-1 {
		return 0, fmt.Errorf("%w: start %d end %d epoch %d",
			ErrRetargetBoundaryMismatch, start.Height, end.Height, rules.EpochLength)
	}

	expected := rules.ExpectedTimespan()
	if expected <= 0 {
		return 0, fmt.Errorf("%w: non-positive expected timespan", ErrInvalidTarget)
	}
	factor := rules.AdjustmentFactor
	if factor <= 0 {
		factor = 4
	}

	elapsed := end.Header.Timestamp.Unix() - start.Header.Timestamp.Unix()
	minSpan := expected / factor
	maxSpan := expected * factor
	switch {
	case elapsed < minSpan:
		elapsed = minSpan
	case elapsed > maxSpan:
		elapsed = maxSpan
	}

	target := BitsToTarget(end.Header.Bits)
	if target.Sign() <= 0 {
		return 0, fmt.Errorf("%w: bits %08x", ErrInvalidTarget, end.Header.Bits)
	}
	target.Mul(target, big.NewInt(elapsed))
	target.Div(target, big.NewInt(expected))
	if rules.PowLimit != nil && target.Cmp(rules.PowLimit) > 0 {
		target.Set(rules.PowLimit)
	}
	return TargetToBits(target), nil
}

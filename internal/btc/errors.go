package btc

import "errors"

var (
	ErrMalformedHeader          = errors.New("malformed block header")
	ErrMalformedHeaderBatch     = errors.New("malformed header batch")
	ErrMalformedVarInt          = errors.New("malformed varint")
	ErrMalformedOutputs         = errors.New("malformed output vector")
	ErrInvalidTxID              = errors.New("invalid txid")
	ErrProofIndexOutOfRange     = errors.New("merkle proof index out of range")
	ErrInvalidTarget            = errors.New("invalid target")
	ErrRetargetBoundaryMismatch = errors.New("retarget boundary mismatch")
	ErrUnsupportedNetwork       = errors.New("unsupported network")
)

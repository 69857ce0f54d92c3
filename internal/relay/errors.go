package relay

import "errors"

var (
	ErrMalformedInput           = errors.New("malformed input")
	ErrUnknownReference         = errors.New("unknown reference")
	ErrChainLinkBroken          = errors.New("broken chain link")
	ErrInvalidProofOfWork       = errors.New("invalid proof of work")
	ErrDuplicateHeader          = errors.New("duplicate header")
	ErrInvalidTarget            = errors.New("invalid target")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrOutdatedHeader           = errors.New("outdated header")
	ErrPaused                   = errors.New("relay is paused")
	ErrInvalidTxID              = errors.New("invalid txid")
	ErrNotFinalized             = errors.New("block not finalized")
	ErrBlockTooOld              = errors.New("block too old")
	ErrNotInitialized           = errors.New("relay not initialized")
	ErrInvalidParameter         = errors.New("invalid parameter")
	ErrRetargetRequired         = errors.New("retarget required")
	ErrAlreadyInitialized       = errors.New("relay already initialized")
	ErrRetargetBoundaryMismatch = errors.New("retarget boundary mismatch")
)

var codes = []struct {
	err  error
	code int
}{
	{ErrMalformedInput, 0},
	{ErrRetargetBoundaryMismatch, 0},
	{ErrChainLinkBroken, 1},
	{ErrInvalidProofOfWork, 2},
	{ErrDuplicateHeader, 3},
	{ErrInvalidTarget, 4},
	{ErrUnauthorized, 5},
	{ErrOutdatedHeader, 6},
	{ErrPaused, 7},
	{ErrInvalidTxID, 8},
	{ErrNotFinalized, 9},
	{ErrBlockTooOld, 10},
	{ErrNotInitialized, 11},
	{ErrInvalidParameter, 12},
	{ErrRetargetRequired, 13},
	{ErrAlreadyInitialized, 14},
	{ErrUnknownReference, 15},
}

// Code returns the stable numeric code clients use to tell rejection kinds
// apart, or -1 when err is not a relay error.
func Code(err error) int {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return -1
}

// Package safe converts between RPC and relay integer widths with range
// checks.
package safe

import (
	"fmt"
	"math"
)

type signed interface {
	~int | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint32 | ~uint64
}

// Uint64 converts a signed integer to uint64, rejecting negatives.
func Uint64[T signed](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts an unsigned integer to int64, rejecting values above
// math.MaxInt64.
func Int64[T unsigned](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Int converts an unsigned integer to int, rejecting values above
// math.MaxInt.
func Int[T unsigned](v T) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}

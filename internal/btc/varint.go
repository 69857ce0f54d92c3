package btc

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// ReadVarInt decodes a CompactSize integer from the start of b and returns
// it with the number of bytes consumed. Non-minimal encodings are rejected.
func ReadVarInt(b []byte) (uint64, int, error) {
	r := bytes.NewReader(b)
	v, err := wire.ReadVarInt(r, wire.ProtocolVersion)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedVarInt, err)
	}
	return v, len(b) - r.Len(), nil
}

// AppendVarInt appends the minimal CompactSize encoding of v to dst.
func AppendVarInt(dst []byte, v uint64) []byte {
	var buf bytes.Buffer
	buf.Grow(wire.VarIntSerializeSize(v))
	_ = wire.WriteVarInt(&buf, wire.ProtocolVersion, v)
	return append(dst, buf.Bytes()...)
}

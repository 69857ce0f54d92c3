package btc

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

const outputValueSize = 8

// DecodeOutputs parses a serialized transaction output vector: a VarInt
// count followed by that many value(8) || VarInt(len) || script entries.
// The vector must consume b exactly.
func DecodeOutputs(b []byte) ([]*wire.TxOut, error) {
	count, off, err := ReadVarInt(b)
	if err != nil {
		return nil, fmt.Errorf("%w: count: %w", ErrMalformedOutputs, err)
	}
	// Each output needs at least its value and a one byte script length.
	if count > uint64(len(b)-off)/(outputValueSize+1) {
		return nil, fmt.Errorf("%w: count %d exceeds payload", ErrMalformedOutputs, count)
	}

	outs := make([]*wire.TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		if len(b)-off < outputValueSize {
			return nil, fmt.Errorf("%w: output %d: truncated value", ErrMalformedOutputs, i)
		}
		value := int64(binary.LittleEndian.Uint64(b[off : off+outputValueSize]))
		off += outputValueSize

		scriptLen, n, err := ReadVarInt(b[off:])
		if err != nil {
			return nil, fmt.Errorf("%w: output %d: script length: %w", ErrMalformedOutputs, i, err)
		}
		off += n
		if scriptLen > uint64(len(b)-off) {
			return nil, fmt.Errorf("%w: output %d: script overruns payload", ErrMalformedOutputs, i)
		}
		script := make([]byte, scriptLen)
		copy(script, b[off:off+int(scriptLen)])
		off += int(scriptLen)

		outs = append(outs, wire.NewTxOut(value, script))
	}

	if off != len(b) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedOutputs, len(b)-off)
	}
	return outs, nil
}

// EncodeOutputs serializes outs in the format DecodeOutputs reads.
func EncodeOutputs(outs []*wire.TxOut) []byte {
	buf := AppendVarInt(nil, uint64(len(outs)))
	for _, out := range outs {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(out.Value))
		buf = AppendVarInt(buf, uint64(len(out.PkScript)))
		buf = append(buf, out.PkScript...)
	}
	return buf
}

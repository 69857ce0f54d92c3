// Package btc holds the Bitcoin primitives the relay validates against:
// header decoding, proof-of-work targets, retargeting, VarInt and
// output-vector decoding and Merkle inclusion proofs.
package btc

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// HeaderSize is the serialized size of a block header.
const HeaderSize = wire.MaxBlockHeaderPayload

// ParseHeader decodes exactly one serialized header.
func ParseHeader(raw []byte) (*wire.BlockHeader, error) {
	if len(raw) != HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedHeader, len(raw), HeaderSize)
	}
	var h wire.BlockHeader
	if err := h.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}
	return &h, nil
}

// SerializeHeader returns the 80 byte wire form of h.
func SerializeHeader(h *wire.BlockHeader) []byte {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	// Writes into a bytes.Buffer cannot fail.
	_ = h.Serialize(&buf)
	return buf.Bytes()
}

// JoinHeaders concatenates the wire form of every header.
func JoinHeaders(headers ...*wire.BlockHeader) []byte {
	out := make([]byte, 0, len(headers)*HeaderSize)
	for _, h := range headers {
		out = append(out, SerializeHeader(h)...)
	}
	return out
}

// HeaderHash is the double SHA-256 of the serialized header in wire order.
func HeaderHash(h *wire.BlockHeader) chainhash.Hash {
	return h.BlockHash()
}

// Headers is a concatenation of serialized headers.
type Headers struct {
	raw []byte
}

// SplitHeaders validates the length of a header concatenation without
// decoding it.
func SplitHeaders(raw []byte) (Headers, error) {
	if len(raw) == 0 {
		return Headers{}, fmt.Errorf("%w: empty", ErrMalformedHeaderBatch)
	}
	if len(raw)%HeaderSize != 0 {
		return Headers{}, fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformedHeaderBatch, len(raw), HeaderSize)
	}
	return Headers{raw: raw}, nil
}

// Len returns the number of headers in the batch.
func (h Headers) Len() int {
	return len(h.raw) / HeaderSize
}

// Raw returns the i-th serialized header.
func (h Headers) Raw(i int) []byte {
	return h.raw[i*HeaderSize : (i+1)*HeaderSize]
}

// All yields the serialized headers in order. Each window aliases the
// underlying batch.
func (h Headers) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := 0; i < h.Len(); i++ {
			if !yield(i, h.Raw(i)) {
				return
			}
		}
	}
}

package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	stateVersion = 1

	stateFlagInitialized = 1 << 0
	stateFlagPaused      = 1 << 1

	heightKeySize   = 8
	chainKeySize    = heightKeySize + 8
	entryHeaderSize = 8 + 8 + 1 + wire.MaxBlockHeaderPayload
	stateSize       = 2 + 6*8 + chainhash.HashSize
)

var errCorrupt = errors.New("corrupt record")

func encodeState(s State) []byte {
	var flags byte
	if s.Initialized {
		flags |= stateFlagInitialized
	}
	if s.Paused {
		flags |= stateFlagPaused
	}
	buf := make([]byte, 0, stateSize)
	buf = append(buf, stateVersion, flags)
	buf = binary.BigEndian.AppendUint64(buf, s.InitialHeight)
	buf = binary.BigEndian.AppendUint64(buf, s.LastSubmittedHeight)
	buf = binary.BigEndian.AppendUint64(buf, s.NextUnfinalized)
	buf = binary.BigEndian.AppendUint64(buf, s.EarliestHeight)
	buf = binary.BigEndian.AppendUint64(buf, s.FinalizationParameter)
	buf = binary.BigEndian.AppendUint64(buf, s.EpochLength)
	return append(buf, s.GenesisHash[:]...)
}

func decodeState(b []byte) (State, error) {
	if len(b) != stateSize || b[0] != stateVersion {
		return State{}, fmt.Errorf("state: %w", errCorrupt)
	}
	flags := b[1]
	u := func(i int) uint64 { return binary.BigEndian.Uint64(b[2+i*8:]) }
	s := State{
		Initialized:           flags&stateFlagInitialized != 0,
		Paused:                flags&stateFlagPaused != 0,
		InitialHeight:         u(0),
		LastSubmittedHeight:   u(1),
		NextUnfinalized:       u(2),
		EarliestHeight:        u(3),
		FinalizationParameter: u(4),
		EpochLength:           u(5),
	}
	copy(s.GenesisHash[:], b[2+6*8:])
	return s, nil
}

// entry records are height | seq | finalized | header | relayer.
func encodeEntry(e Entry, seq uint64) []byte {
	buf := make([]byte, 0, entryHeaderSize+len(e.Relayer))
	buf = binary.BigEndian.AppendUint64(buf, e.Height)
	buf = binary.BigEndian.AppendUint64(buf, seq)
	if e.Finalized {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	w := bytes.NewBuffer(buf)
	_ = e.Header.Serialize(w)
	w.WriteString(e.Relayer)
	return w.Bytes()
}

func decodeEntry(hash chainhash.Hash, b []byte) (Entry, uint64, error) {
	if len(b) < entryHeaderSize {
		return Entry{}, 0, fmt.Errorf("entry %s: %w", hash, errCorrupt)
	}
	e := Entry{
		Height:    binary.BigEndian.Uint64(b[0:8]),
		Hash:      hash,
		Finalized: b[16] == 1,
		Relayer:   string(b[entryHeaderSize:]),
	}
	if err := e.Header.Deserialize(bytes.NewReader(b[17:entryHeaderSize])); err != nil {
		return Entry{}, 0, fmt.Errorf("entry %s header: %w", hash, err)
	}
	return e, binary.BigEndian.Uint64(b[8:16]), nil
}

func heightKey(height uint64) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, heightKeySize), height)
}

func chainKey(height, seq uint64) []byte {
	k := make([]byte, 0, chainKeySize)
	k = binary.BigEndian.AppendUint64(k, height)
	return binary.BigEndian.AppendUint64(k, seq)
}

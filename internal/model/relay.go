package model

import "time"

type Network string

// BlockEventKind tells an added header from a finalized one.
type BlockEventKind string

var (
	BlockAdded     BlockEventKind = "added"
	BlockFinalized BlockEventKind = "finalized"
)

// BlockEvent is one relay event as archived in ClickHouse. Hashes are in
// display (reversed) hex.
type BlockEvent struct {
	Network    Network
	Kind       BlockEventKind
	Height     uint64
	Hash       string
	ParentHash string
	Relayer    string
	RecordedAt time.Time
}

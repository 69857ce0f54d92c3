package transport

import (
	"time"

	"github.com/goodnatureofminers/blockrelay7000-backend/internal/model"
	"github.com/goodnatureofminers/blockrelay7000-backend/internal/relay"
)

// Hashes are rendered in display hex, headers in wire-order hex.

type statusResponse struct {
	Network               model.Network `json:"network"`
	Initialized           bool          `json:"initialized"`
	InitialHeight         uint64        `json:"initial_height"`
	GenesisHash           string        `json:"genesis_hash"`
	LastSubmittedHeight   uint64        `json:"last_submitted_height"`
	FinalizedHeight       uint64        `json:"finalized_height"`
	EarliestHeight        uint64        `json:"earliest_height"`
	FinalizationParameter uint64        `json:"finalization_parameter"`
	EpochLength           uint64        `json:"epoch_length"`
	Paused                bool          `json:"paused"`
}

type heightResponse struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
}

type candidatesResponse struct {
	Height     uint64 `json:"height"`
	Candidates int    `json:"candidates"`
}

type hashResponse struct {
	Height uint64 `json:"height"`
	Fork   int    `json:"fork"`
	Hash   string `json:"hash"`
}

type blockResponse struct {
	Height     uint64 `json:"height"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	Relayer    string `json:"relayer"`
}

type proofResponse struct {
	Valid bool `json:"valid"`
}

type submitResponse struct {
	Added               []blockResponse `json:"added"`
	Finalized           []blockResponse `json:"finalized"`
	Pruned              int             `json:"pruned"`
	LastSubmittedHeight uint64          `json:"last_submitted_height"`
	FinalizedHeight     uint64          `json:"finalized_height"`
}

type trimResponse struct {
	Removed int `json:"removed"`
}

type eventResponse struct {
	Kind       model.BlockEventKind `json:"kind"`
	Height     uint64               `json:"height"`
	Hash       string               `json:"hash"`
	ParentHash string               `json:"parent_hash"`
	Relayer    string               `json:"relayer"`
	RecordedAt time.Time            `json:"recorded_at"`
}

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

func newStatusResponse(network model.Network, st relay.Status) statusResponse {
	return statusResponse{
		Network:               network,
		Initialized:           st.Initialized,
		InitialHeight:         st.InitialHeight,
		GenesisHash:           st.GenesisHash.String(),
		LastSubmittedHeight:   st.LastSubmittedHeight,
		FinalizedHeight:       st.FinalizedHeight,
		EarliestHeight:        st.EarliestHeight,
		FinalizationParameter: st.FinalizationParameter,
		EpochLength:           st.EpochLength,
		Paused:                st.Paused,
	}
}

func newBlockResponse(e relay.BlockEvent) blockResponse {
	return blockResponse{
		Height:     e.Height,
		Hash:       e.Hash.String(),
		ParentHash: e.Parent.String(),
		Relayer:    e.Relayer,
	}
}

func newBlockResponses(events []relay.BlockEvent) []blockResponse {
	out := make([]blockResponse, 0, len(events))
	for _, e := range events {
		out = append(out, newBlockResponse(e))
	}
	return out
}

func newSubmitResponse(res *relay.SubmitResult) submitResponse {
	return submitResponse{
		Added:               newBlockResponses(res.Added),
		Finalized:           newBlockResponses(res.Finalized),
		Pruned:              res.Pruned,
		LastSubmittedHeight: res.LastSubmittedHeight,
		FinalizedHeight:     res.FinalizedHeight,
	}
}

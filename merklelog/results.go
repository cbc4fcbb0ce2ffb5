package merklelog

import (
	"github.com/bankaixyz/mmr/digest"
	"github.com/bankaixyz/mmr/mmr"
)

// AppendResult records the outcome of a single Append call.
type AppendResult struct {
	ElementIndex  mmr.ElementIndex
	LeavesCount   uint64
	ElementsCount uint64
	RootHash      digest.Hash32
}

// BatchAppendResult records the outcome of a BatchAppend call.
type BatchAppendResult struct {
	FirstElementIndex     mmr.ElementIndex
	LastElementIndex      mmr.ElementIndex
	LeavesCount           uint64
	ElementsCount         uint64
	RootHash              digest.Hash32
	PerLeafElementIndices []mmr.ElementIndex
}

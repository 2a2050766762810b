package features

import "github.com/nnuekit/nnue/nnue/position"

// Indexer is the contract every feature indexer satisfies: a fixed output
// dimension, a hash contribution for architecture validation, the active
// feature list for a full refresh, the differential feature list for an
// incremental update, and whether this ply forces a refresh rather than an
// incremental update for a given perspective.
type Indexer interface {
	Name() string
	Dimensions() int
	HashValue() uint32
	RequiresRefresh(dirty position.DirtyPiece, perspective position.Color) bool
	AppendActiveIndices(pos position.Position, perspective position.Color, out *IndexList)
	AppendChangedIndices(pos position.Position, dirty position.DirtyPiece, perspective position.Color, removed, added *IndexList)
}

func orient(perspective position.Color, sq position.Square) position.Square {
	if perspective == position.Black {
		return sq.Mirror()
	}
	return sq
}

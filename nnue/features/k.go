package features

import "github.com/nnuekit/nnue/nnue/position"

// K is the degenerate one-dimensional indexer: it contributes a single
// always-active feature, and exists for testing FeatureSet composition
// against a component whose behavior is trivial to predict by hand.
type K struct{}

// NewK constructs the trivial one-dimensional indexer.
func NewK() K { return K{} }

func (K) Name() string { return "K" }

func (K) Dimensions() int { return 1 }

func (K) HashValue() uint32 { return 0xA3B1C2D4 }

func (K) RequiresRefresh(dirty position.DirtyPiece, perspective position.Color) bool {
	return false
}

func (K) AppendActiveIndices(pos position.Position, perspective position.Color, out *IndexList) {
	out.Add(0)
}

func (K) AppendChangedIndices(pos position.Position, dirty position.DirtyPiece, perspective position.Color, removed, added *IndexList) {
}

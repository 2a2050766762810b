package features

import "github.com/nnuekit/nnue/nnue/position"

// P is the plain piece-square indexer: one active feature per non-king
// piece on the board, with no king conditioning. It is a building block
// used to demonstrate FeatureSet's dimension-offsetting concatenation
// alongside HalfKP, not a competitive architecture on its own.
type P struct{}

// NewP constructs the plain piece-square indexer.
func NewP() P { return P{} }

func (P) Name() string { return "P" }

func (P) Dimensions() int { return PSEnd }

func (P) HashValue() uint32 { return 0x764C9A45 }

func (P) RequiresRefresh(dirty position.DirtyPiece, perspective position.Color) bool {
	return false
}

func (P) AppendActiveIndices(pos position.Position, perspective position.Color, out *IndexList) {
	pos.ForEachPiece(func(sq position.Square, pt position.PieceType, c position.Color) {
		if pt == position.King {
			return
		}
		out.Add(int(makeBonaPiece(perspective, sq, c, pt)))
	})
}

func (P) AppendChangedIndices(pos position.Position, dirty position.DirtyPiece, perspective position.Color, removed, added *IndexList) {
	for i := 0; i < dirty.Count; i++ {
		d := dirty.Deltas[i]
		if d.Piece.Type() == position.King {
			continue
		}
		if d.From != position.NoSquare {
			removed.Add(int(makeBonaPiece(perspective, d.From, d.Piece.Color(), d.Piece.Type())))
		}
		if d.To != position.NoSquare {
			added.Add(int(makeBonaPiece(perspective, d.To, d.Piece.Color(), d.Piece.Type())))
		}
	}
}

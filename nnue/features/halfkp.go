package features

import "github.com/nnuekit/nnue/nnue/position"

// AssociatedKing selects which king's square conditions a HalfKP feature:
// the perspective's own king (Friend), or the opponent's, rotated 180
// degrees (Enemy). Go generics cannot parametrize over a non-type value
// the way a C++ template parameter would, so HalfKP takes this as a type
// parameter instead, the same way the teacher's NewBigNetworkArchitecture
// and NewSmallNetworkArchitecture stand in for a template bool.
type AssociatedKing interface {
	KingSquareFor(pos position.Position, perspective position.Color) position.Square
	TriggersRefresh(dirty position.DirtyPiece, perspective position.Color) bool
}

// Friend conditions HalfKP on the perspective's own king square.
type Friend struct{}

func (Friend) KingSquareFor(pos position.Position, perspective position.Color) position.Square {
	return pos.KingSquare(perspective)
}

func (Friend) TriggersRefresh(dirty position.DirtyPiece, perspective position.Color) bool {
	return dirty.KingMoved[perspective]
}

// Enemy conditions HalfKP on the opponent's king square, rotated 180
// degrees so that it still orients consistently under the perspective
// mirror applied to every feature square.
type Enemy struct{}

func (Enemy) KingSquareFor(pos position.Position, perspective position.Color) position.Square {
	return rotate180(pos.KingSquare(perspective.Other()))
}

func (Enemy) TriggersRefresh(dirty position.DirtyPiece, perspective position.Color) bool {
	return dirty.KingMoved[perspective.Other()]
}

func rotate180(sq position.Square) position.Square {
	return position.Square(63 - int(sq))
}

// HalfKP is the primary feature indexer: one active feature per (king
// square, non-king piece) pair, king-square bucketed so that a king move
// forces a full recompute while every other move updates incrementally.
type HalfKP[K AssociatedKing] struct{}

// NewHalfKP constructs a HalfKP indexer associated with king K (Friend or
// Enemy).
func NewHalfKP[K AssociatedKing]() HalfKP[K] { return HalfKP[K]{} }

func (HalfKP[K]) Name() string {
	var assoc K
	switch any(assoc).(type) {
	case Enemy:
		return "HalfKP(Enemy)"
	default:
		return "HalfKP(Friend)"
	}
}

func (HalfKP[K]) Dimensions() int { return 64 * PSEnd }

func (HalfKP[K]) HashValue() uint32 {
	var assoc K
	h := uint32(0x5D69D5B9)
	if _, ok := any(assoc).(Enemy); ok {
		h ^= 0x00000001
	}
	return h
}

func (HalfKP[K]) RequiresRefresh(dirty position.DirtyPiece, perspective position.Color) bool {
	var assoc K
	return assoc.TriggersRefresh(dirty, perspective)
}

func (h HalfKP[K]) makeIndex(perspective position.Color, sq position.Square, pieceColor position.Color, pt position.PieceType, kingSq position.Square) int {
	return int(orient(perspective, kingSq))*PSEnd + int(makeBonaPiece(perspective, sq, pieceColor, pt))
}

func (h HalfKP[K]) AppendActiveIndices(pos position.Position, perspective position.Color, out *IndexList) {
	var assoc K
	ksq := assoc.KingSquareFor(pos, perspective)
	pos.ForEachPiece(func(sq position.Square, pt position.PieceType, c position.Color) {
		if pt == position.King {
			return
		}
		out.Add(h.makeIndex(perspective, sq, c, pt, ksq))
	})
}

func (h HalfKP[K]) AppendChangedIndices(pos position.Position, dirty position.DirtyPiece, perspective position.Color, removed, added *IndexList) {
	var assoc K
	ksq := assoc.KingSquareFor(pos, perspective)
	for i := 0; i < dirty.Count; i++ {
		d := dirty.Deltas[i]
		if d.Piece.Type() == position.King {
			continue
		}
		if d.From != position.NoSquare {
			removed.Add(h.makeIndex(perspective, d.From, d.Piece.Color(), d.Piece.Type(), ksq))
		}
		if d.To != position.NoSquare {
			added.Add(h.makeIndex(perspective, d.To, d.Piece.Color(), d.Piece.Type(), ksq))
		}
	}
}

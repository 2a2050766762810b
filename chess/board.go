package chess

import (
	"math/bits"

	"github.com/nnuekit/nnue/nnue/position"
)

// Board is a bitboard chess position: one Bitboard per (color, piece
// type), the side to move, and a state stack rooted at the position the
// board was parsed into. It satisfies position.Position.
type Board struct {
	pieces [2][6]Bitboard
	stm    Color

	states  []*position.State
	halfDim int
}

// NewBoard parses fen into a Board whose accumulators are sized for a
// feature transformer with the given per-perspective width (nnue.H in
// the common case).
func NewBoard(fen string, halfDimensions int) (*Board, error) {
	b := &Board{halfDim: halfDimensions}
	if err := b.resetFromFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// SideToMove implements position.Position.
func (b *Board) SideToMove() Color { return b.stm }

// KingSquare implements position.Position.
func (b *Board) KingSquare(c Color) Square {
	bb := b.pieces[c][King]
	if bb == 0 {
		return position.NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// ForEachPiece implements position.Position, enumerating every piece on
// the board including both kings.
func (b *Board) ForEachPiece(yield func(sq Square, pt PieceType, c Color)) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := uint64(b.pieces[c][pt])
			for bb != 0 {
				sq := Square(bits.TrailingZeros64(bb))
				yield(sq, pt, c)
				bb &= bb - 1
			}
		}
	}
}

// CurrentState implements position.Position, returning the top of the
// state stack.
func (b *Board) CurrentState() *position.State {
	return b.states[len(b.states)-1]
}

func (b *Board) pieceAt(sq Square) (PieceType, Color, bool) {
	mask := Bitboard(1) << sq
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if b.pieces[c][pt]&mask != 0 {
				return pt, c, true
			}
		}
	}
	return 0, 0, false
}

func (b *Board) setPiece(sq Square, pt PieceType, c Color) {
	b.pieces[c][pt] |= Bitboard(1) << sq
}

func (b *Board) clearPiece(sq Square, pt PieceType, c Color) {
	b.pieces[c][pt] &^= Bitboard(1) << sq
}

func (b *Board) pushState(dirty position.DirtyPiece) *position.State {
	parent := b.CurrentState()
	state := &position.State{
		Previous: parent,
		Dirty:    dirty,
		Acc:      *position.NewAccumulator(b.halfDim),
	}
	b.states = append(b.states, state)
	return state
}

// PopState discards the current ply's state, returning to its parent.
// Used to unmake a move applied with ApplyMove.
func (b *Board) PopState() {
	if len(b.states) > 1 {
		b.states = b.states[:len(b.states)-1]
	}
}

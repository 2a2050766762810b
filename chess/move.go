package chess

import "github.com/nnuekit/nnue/nnue/position"

// Move is a simple quiet-or-capture move: no castling, no en passant. It
// is enough to exercise the incremental-update path a feature
// transformer drives off a DirtyPiece record.
type Move struct {
	From, To Square
	Promotes PieceType // zero value (Pawn) means this is not a promotion: a pawn can never promote to a pawn
}

// ApplyMove mutates the board to reflect m and pushes a new state whose
// DirtyPiece record describes exactly what changed, leaving the new
// state's accumulator uncomputed. It returns an error if there is no
// piece on From.
func (b *Board) ApplyMove(m Move) error {
	pt, c, ok := b.pieceAt(m.From)
	if !ok {
		return errNoPieceAt(m.From)
	}

	dirty := position.DirtyPiece{}
	capturedType, capturedColor, captured := b.pieceAt(m.To)
	if captured {
		b.clearPiece(m.To, capturedType, capturedColor)
		dirty.Deltas[dirty.Count] = position.PieceDelta{
			Piece: position.MakePiece(capturedColor, capturedType),
			From:  m.To,
			To:    position.NoSquare,
		}
		dirty.Count++
	}

	b.clearPiece(m.From, pt, c)
	finalType := pt
	if m.Promotes != Pawn {
		finalType = m.Promotes
	}
	b.setPiece(m.To, finalType, c)

	if finalType == pt {
		dirty.Deltas[dirty.Count] = position.PieceDelta{
			Piece: position.MakePiece(c, pt),
			From:  m.From,
			To:    m.To,
		}
	} else {
		dirty.Deltas[dirty.Count] = position.PieceDelta{
			Piece: position.MakePiece(c, pt),
			From:  m.From,
			To:    position.NoSquare,
		}
		dirty.Count++
		dirty.Deltas[dirty.Count] = position.PieceDelta{
			Piece: position.MakePiece(c, finalType),
			From:  position.NoSquare,
			To:    m.To,
		}
	}
	dirty.Count++

	if pt == King {
		dirty.KingMoved[c] = true
	}

	b.pushState(dirty)
	b.stm = b.stm.Other()
	return nil
}

type noPieceAtError struct{ sq Square }

func (e noPieceAtError) Error() string {
	return "chess: no piece at " + squareName(e.sq)
}

func errNoPieceAt(sq Square) error { return noPieceAtError{sq} }

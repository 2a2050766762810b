package chess

import (
	"fmt"

	"github.com/nnuekit/nnue/nnue/position"
)

// resetFromFEN replaces the board's pieces and side to move from a FEN
// piece-placement and active-color field, and resets the state stack to
// a single root state with an empty dirty-piece record. Castling rights,
// en passant, and the move counters are accepted but not retained: they
// have no bearing on HalfKP feature indexing.
func (b *Board) resetFromFEN(fen string) error {
	fields := trimFields(fen)
	if len(fields) < 2 {
		return fmt.Errorf("chess: malformed FEN %q", fen)
	}

	b.pieces = [2][6]Bitboard{}

	rank, file := 7, 0
	for _, r := range fields[0] {
		switch {
		case r == '/':
			rank--
			file = 0
		case r >= '1' && r <= '8':
			file += int(r - '0')
		default:
			pc, ok := pieceRunes[r]
			if !ok {
				return fmt.Errorf("chess: invalid FEN piece %q", string(r))
			}
			if file > 7 || rank < 0 {
				return fmt.Errorf("chess: malformed FEN rank data %q", fen)
			}
			b.setPiece(squareFromFileRank(file, rank), pc.pt, pc.c)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.stm = White
	case "b":
		b.stm = Black
	default:
		return fmt.Errorf("chess: invalid FEN side to move %q", fields[1])
	}

	root := &position.State{Acc: *position.NewAccumulator(b.halfDim)}
	b.states = []*position.State{root}
	return nil
}

// FEN renders the board's piece placement and side to move as a FEN
// prefix (no castling/en-passant/move-counter fields, since this package
// never tracks them).
func (b *Board) FEN() string {
	out := make([]byte, 0, 72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := squareFromFileRank(file, rank)
			pt, c, ok := b.pieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				out = append(out, byte('0'+empty))
				empty = 0
			}
			out = append(out, byte(pieceRune(pt, c)))
		}
		if empty > 0 {
			out = append(out, byte('0'+empty))
		}
		if rank > 0 {
			out = append(out, '/')
		}
	}
	out = append(out, ' ')
	if b.stm == White {
		out = append(out, 'w')
	} else {
		out = append(out, 'b')
	}
	return string(out)
}

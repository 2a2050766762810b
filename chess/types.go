// Package chess is a minimal bitboard position implementation sufficient
// to satisfy position.Position: FEN parsing, piece enumeration, king
// squares, and a state stack carrying the dirty-piece record an
// evaluator's feature transformer needs to update incrementally. It is a
// reference collaborator for tests and the inspection CLI, not a full
// move generator — ported and trimmed from the teacher's board package.
package chess

import (
	"fmt"
	"strings"

	"github.com/nnuekit/nnue/nnue/position"
)

// Bitboard is a 64-bit set of squares, one bit per board square in
// little-endian rank-file order (bit 0 = a1, bit 63 = h8).
type Bitboard uint64

// Square re-exports position.Square so callers working only with package
// chess do not need to import package position for the common case.
type Square = position.Square

// Color re-exports position.Color.
type Color = position.Color

// PieceType re-exports position.PieceType.
type PieceType = position.PieceType

const (
	White = position.White
	Black = position.Black
)

const (
	Pawn        = position.Pawn
	Knight      = position.Knight
	Bishop      = position.Bishop
	Rook        = position.Rook
	Queen       = position.Queen
	King        = position.King
	NoPieceType = position.NoPieceType
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func squareFromFileRank(file, rank int) Square {
	return Square(rank*8 + file)
}

var pieceRunes = map[rune]struct {
	pt PieceType
	c  Color
}{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White}, 'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black}, 'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}

func pieceRune(pt PieceType, c Color) rune {
	runes := "PNBRQK"
	r := rune(runes[pt])
	if c == Black {
		r += 'a' - 'A'
	}
	return r
}

func squareName(sq Square) string {
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank()+1)
}

func squareFromName(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("chess: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("chess: invalid square %q", s)
	}
	return squareFromFileRank(file, rank), nil
}

func trimFields(s string) []string {
	return strings.Fields(strings.TrimSpace(s))
}

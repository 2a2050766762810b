package features

import "github.com/nnuekit/nnue/nnue/position"

// BonaPiece is a piece-and-square encoding relative to a perspective: an
// integer in [0, PSEnd) identifying "no piece", or one of the ten
// non-king (piece type, owner) combinations on one of 64 squares.
type BonaPiece int

const (
	psNone    = 0
	psWPawn   = 1
	psBPawn   = psWPawn + 64
	psWKnight = psBPawn + 64
	psBKnight = psWKnight + 64
	psWBishop = psBKnight + 64
	psBBishop = psWBishop + 64
	psWRook   = psBBishop + 64
	psBRook   = psWRook + 64
	psWQueen  = psBRook + 64
	psBQueen  = psWQueen + 64

	// PSEnd is the BonaPiece dimension, PS_NB in the classic HalfKP chess
	// layout: ten non-king piece kinds times 64 squares, plus the "no
	// piece" sentinel at index 0.
	PSEnd = psBQueen + 64
)

// usPieceSquareBase and themPieceSquareBase index by PieceType (Pawn
// through Queen; King never appears here, it is the HalfKP conditioning
// square, not a feature). "us"/"them" is relative to the perspective the
// index is being computed for, not to a literal color.
var usPieceSquareBase = [5]int{psWPawn, psWKnight, psWBishop, psWRook, psWQueen}
var themPieceSquareBase = [5]int{psBPawn, psBKnight, psBBishop, psBRook, psBQueen}

func pieceSquareBase(perspective, pieceColor position.Color, pt position.PieceType) int {
	if pieceColor == perspective {
		return usPieceSquareBase[pt]
	}
	return themPieceSquareBase[pt]
}

// makeBonaPiece computes the perspective-relative BonaPiece for a non-king
// piece standing on sq.
func makeBonaPiece(perspective position.Color, sq position.Square, pieceColor position.Color, pt position.PieceType) BonaPiece {
	return BonaPiece(int(orient(perspective, sq)) + pieceSquareBase(perspective, pieceColor, pt))
}

package engine

import "github.com/lgbarn/super-checkers-go/internal/checkers"

// diagonalBetween returns the squares strictly between from and to, in
// walking order. ok is false when the two squares do not share a diagonal.
func diagonalBetween(from, to checkers.Square) (squares []checkers.Square, ok bool) {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	if rowDiff == 0 || abs(rowDiff) != abs(colDiff) {
		return nil, false
	}

	rowDir := sign(rowDiff)
	colDir := sign(colDiff)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		squares = append(squares, sq)
		sq = sq.Offset(rowDir, colDir)
	}
	return squares, true
}

// segmentContents classifies the pieces found on a diagonal segment from the
// point of view of the given colour.
type segmentContents struct {
	opponents []checkers.Square
	friendly  bool
	blocked   bool // an unplayable square sits on the segment
}

// scanSegment walks the squares and records every opponent piece, and
// whether any friendly piece or unplayable square was met. The board is
// only read.
func scanSegment(board *checkers.Board, colour checkers.Colour, squares []checkers.Square) segmentContents {
	var contents segmentContents
	for _, sq := range squares {
		cell := board.Get(sq)
		switch {
		case cell.IsEmpty():
		case cell.BelongsTo(colour):
			contents.friendly = true
		case cell.IsPiece():
			contents.opponents = append(contents.opponents, sq)
		default:
			contents.blocked = true
		}
	}
	return contents
}

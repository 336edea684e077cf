package engine

import (
	"github.com/lgbarn/super-checkers-go/internal/checkers"
)

// applyAction moves the piece and removes every captured opponent piece.
// The action must come from Classify on the same board; nothing here can
// fail, so a validated action is always applied completely.
func applyAction(board *checkers.Board, mover, opponent *checkers.Player, action Action) int {
	board.Set(action.From, checkers.EmptyCell)
	board.Set(action.To, action.Piece)

	captured := 0
	for _, sq := range action.Captures {
		cell := board.Get(sq)
		if !cell.IsPiece() {
			continue
		}
		if opponent != nil {
			switch cell.Rank {
			case checkers.King:
				opponent.DecrementKingCount()
			case checkers.TripleKing:
				opponent.DecrementTripleKingCount()
			}
		}
		board.Set(sq, checkers.EmptyCell)
		captured++
	}

	if captured > 0 {
		mover.IncrementCapturedPiecesCount(captured)
	}
	return captured
}

// promote upgrades the piece on sq when it stands on its promotion row.
// A regular piece reaching the far row becomes a king. A king reaching its
// own home row, the opposite end from where it was crowned, becomes a
// triple king. It returns the new rank and whether a promotion happened.
func promote(board *checkers.Board, owner *checkers.Player, sq checkers.Square) (checkers.Rank, bool) {
	cell := board.Get(sq)
	if !cell.IsPiece() {
		return checkers.Regular, false
	}

	switch {
	case cell.Rank == checkers.Regular && sq.Row == cell.Colour.FarRow():
		board.Set(sq, checkers.PieceCell(cell.Colour, checkers.King))
		owner.IncrementKingCount()
		return checkers.King, true

	case cell.Rank == checkers.King && sq.Row == cell.Colour.HomeRow():
		board.Set(sq, checkers.PieceCell(cell.Colour, checkers.TripleKing))
		owner.DecrementKingCount()
		owner.IncrementTripleKingCount()
		return checkers.TripleKing, true
	}

	return cell.Rank, false
}

package engine

import "github.com/lgbarn/super-checkers-go/internal/checkers"

// LegalActions returns every action the piece on sq could legally take,
// ignoring turn order. Destinations are generated along the four diagonal
// rays and classified with Classify. An empty or unplayable square yields
// no actions.
func LegalActions(board *checkers.Board, sq checkers.Square) []Action {
	if !board.Get(sq).IsPiece() {
		return nil
	}

	var actions []Action
	for _, dir := range diagonalDirections {
		for dist := 1; dist < checkers.BoardSize; dist++ {
			to := sq.Offset(dir[0]*dist, dir[1]*dist)
			if !to.InBounds() {
				break
			}
			if action := Classify(board, sq, to); action.Kind != Illegal {
				actions = append(actions, action)
			}
		}
	}
	return actions
}

// HasCaptureFrom reports whether the piece on sq has at least one jump that
// captures an opponent piece. This drives capture chains: a regular piece
// checks its two forward jumps, a king looks along each ray for a single
// opponent followed by an empty square, and a triple king looks for one or
// two opponents with an empty landing square beyond. A triple king leap that
// captures nothing does not count.
func HasCaptureFrom(board *checkers.Board, sq checkers.Square) bool {
	if !board.Get(sq).IsPiece() {
		return false
	}

	for _, dir := range diagonalDirections {
		for dist := 2; dist < checkers.BoardSize; dist++ {
			to := sq.Offset(dir[0]*dist, dir[1]*dist)
			if !to.InBounds() {
				break
			}
			action := Classify(board, sq, to)
			if action.IsCapture() {
				return true
			}
		}
	}
	return false
}

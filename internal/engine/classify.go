package engine

import "github.com/lgbarn/super-checkers-go/internal/checkers"

// ActionKind categorizes a proposed move.
type ActionKind int

const (
	Illegal ActionKind = iota
	PlainMove
	RegularJump
	KingJump
	TripleKingJump
)

// String returns the string representation of an action kind.
func (k ActionKind) String() string {
	switch k {
	case PlainMove:
		return "move"
	case RegularJump:
		return "regular jump"
	case KingJump:
		return "king jump"
	case TripleKingJump:
		return "triple king jump"
	}
	return "illegal"
}

// IsJump reports whether the action is any of the jump kinds.
func (k ActionKind) IsJump() bool {
	return k == RegularJump || k == KingJump || k == TripleKingJump
}

// Action is the classification of a proposed move from one square to
// another. Captures lists the opponent pieces the action removes, in
// walking order. Reason explains an Illegal classification.
type Action struct {
	Kind     ActionKind
	From     checkers.Square
	To       checkers.Square
	Piece    checkers.Cell
	Captures []checkers.Square
	Reason   string
}

// IsCapture reports whether the action is a jump that removes at least one
// opponent piece. A triple king leap over empty squares is a jump but not a
// capture.
func (a Action) IsCapture() bool {
	return a.Kind.IsJump() && len(a.Captures) > 0
}

// Maximum number of opponent pieces a triple king can leap in one jump.
const maxTripleKingCaptures = 2

// Classify determines which kind of action moving the piece on from to the
// square to would be. The candidates are tried in order: plain move,
// regular jump, king jump, triple king jump. Turn order is not considered
// and the board is never modified.
func Classify(board *checkers.Board, from, to checkers.Square) Action {
	action := Action{From: from, To: to, Piece: board.Get(from)}
	piece := action.Piece

	if !from.InBounds() || !to.InBounds() {
		return action.illegal("square location does not exist on the board")
	}
	if !piece.IsPiece() {
		return action.illegal("no piece on the starting square")
	}
	if !board.Get(to).IsEmpty() {
		return action.illegal("destination is not an empty playable square")
	}

	if isPlainMove(piece, from, to) {
		action.Kind = PlainMove
		return action
	}

	switch piece.Rank {
	case checkers.Regular:
		return classifyRegularJump(board, action)
	case checkers.King:
		return classifyLongJump(board, action, KingJump)
	case checkers.TripleKing:
		return classifyLongJump(board, action, TripleKingJump)
	}
	return action.illegal("unknown piece rank")
}

func (a Action) illegal(reason string) Action {
	a.Kind = Illegal
	a.Captures = nil
	a.Reason = reason
	return a
}

// isPlainMove checks the one-step diagonal geometry for the piece's rank.
// Regular pieces only step forward; kings and triple kings step either way.
func isPlainMove(piece checkers.Cell, from, to checkers.Square) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	if abs(colDiff) != 1 {
		return false
	}
	if piece.Rank == checkers.Regular {
		return rowDiff == piece.Colour.Forward()
	}
	return abs(rowDiff) == 1
}

// classifyRegularJump checks a two-step forward jump over one opponent piece.
func classifyRegularJump(board *checkers.Board, action Action) Action {
	from, to := action.From, action.To
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	if rowDiff != 2*action.Piece.Colour.Forward() || abs(colDiff) != 2 {
		return action.illegal("this is an invalid move")
	}

	mid := from.Offset(rowDiff/2, colDiff/2)
	if !board.Get(mid).BelongsTo(action.Piece.Colour.Opposite()) {
		return action.illegal("no opponent piece to jump")
	}

	action.Kind = RegularJump
	action.Captures = []checkers.Square{mid}
	return action
}

// classifyLongJump checks a diagonal jump of any distance of at least two.
// A king must pass exactly one opponent piece; a triple king may pass up to
// two, or none at all. Neither may pass a friendly piece.
func classifyLongJump(board *checkers.Board, action Action, kind ActionKind) Action {
	between, ok := diagonalBetween(action.From, action.To)
	if !ok || len(between) == 0 {
		return action.illegal("this is an invalid move")
	}

	contents := scanSegment(board, action.Piece.Colour, between)
	if contents.friendly {
		return action.illegal("cannot jump over a friendly piece")
	}
	if contents.blocked {
		return action.illegal("this is an invalid move")
	}

	switch kind {
	case KingJump:
		if len(contents.opponents) != 1 {
			return action.illegal("a king jump must pass exactly one opponent piece")
		}
	case TripleKingJump:
		if len(contents.opponents) > maxTripleKingCaptures {
			return action.illegal("a triple king jump may pass at most two opponent pieces")
		}
	}

	action.Kind = kind
	action.Captures = contents.opponents
	return action
}

package engine

import (
	"fmt"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
)

// TurnState records whose turn it is and what the previous action was.
// ChainActive is set when the last action captured and the same piece can
// capture again; the mover then keeps the turn and must capture with that
// piece.
type TurnState struct {
	ToMove      checkers.Colour
	LastMover   string
	LastTo      checkers.Square
	LastKind    ActionKind
	ChainActive bool
}

// newTurnState returns the state at the start of a game.
func newTurnState(toMove checkers.Colour) TurnState {
	return TurnState{ToMove: toMove, LastKind: Illegal}
}

// authorize checks whether the player may perform the action now.
// It returns an empty string when allowed, or the reason it is not.
func (t *TurnState) authorize(player *checkers.Player, action Action) string {
	if player.Colour() != t.ToMove {
		return fmt.Sprintf("this is not %s's turn", player.Name())
	}
	if t.LastMover != player.Name() {
		return ""
	}

	if !t.ChainActive {
		// Only reachable when the turn did not flip after a finished action.
		if t.LastKind == PlainMove {
			return "previously a move, the same player cannot move again"
		}
		return "previous action ended the turn"
	}
	if !action.Kind.IsJump() {
		return "previously a jump, this action cannot be a move"
	}
	if action.From != t.LastTo {
		return fmt.Sprintf("cannot jump a different piece, continue with %s", t.LastTo)
	}
	if !action.IsCapture() {
		return "a capture chain must continue with a capture"
	}
	return ""
}

// advance records the applied action. A plain move always passes the turn,
// as does a jump that captured nothing. A capturing jump passes it only when
// no further capture is available.
func (t *TurnState) advance(player *checkers.Player, action Action, moreCaptures bool) (flipped bool) {
	t.LastMover = player.Name()
	t.LastTo = action.To
	t.LastKind = action.Kind
	t.ChainActive = action.IsCapture() && moreCaptures

	if !t.ChainActive {
		t.ToMove = player.Colour().Opposite()
		return true
	}
	return false
}

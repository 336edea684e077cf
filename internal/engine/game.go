// Package engine provides super-checkers move validation and board mutation.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/errors"
)

// Game owns the board, the two registered players and the turn state.
// A Game is not safe for concurrent use.
type Game struct {
	ID string

	board   *checkers.Board
	players []*checkers.Player
	turn    TurnState
	log     *zap.Logger
}

// NewGame creates a game with the standard starting layout and Black to
// move. A nil logger disables logging.
func NewGame(logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Game{
		ID:    id,
		board: checkers.NewInitialBoard(),
		turn:  newTurnState(checkers.Black),
		log:   logger.With(zap.String("game_id", id)),
	}
}

// CreatePlayer registers a player with a piece colour. Names must be unique
// and each colour may be claimed once, so at most two players register.
func (g *Game) CreatePlayer(name string, colour checkers.Colour) (*checkers.Player, error) {
	if name == "" {
		return nil, fmt.Errorf("empty player name: %w", errors.ErrInvalidPlayer)
	}
	for _, p := range g.players {
		if p.Name() == name {
			return nil, fmt.Errorf("player %q already exists: %w", name, errors.ErrInvalidPlayer)
		}
		if p.Colour() == colour {
			return nil, fmt.Errorf("colour %s already taken by %q: %w", colour, p.Name(), errors.ErrInvalidPlayer)
		}
	}

	player := checkers.NewPlayer(name, colour)
	player.SetPromotionCounts(
		g.board.CountRank(colour, checkers.King),
		g.board.CountRank(colour, checkers.TripleKing),
	)
	g.players = append(g.players, player)

	g.log.Debug("player created", zap.String("player", name), zap.Stringer("colour", colour))
	return player, nil
}

// Player returns the registered player with the given name.
func (g *Game) Player(name string) (*checkers.Player, bool) {
	for _, p := range g.players {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Players returns the registered players in registration order.
func (g *Game) Players() []*checkers.Player {
	out := make([]*checkers.Player, len(g.players))
	copy(out, g.players)
	return out
}

// opponentOf returns the other registered player, or nil if there is none.
func (g *Game) opponentOf(player *checkers.Player) *checkers.Player {
	for _, p := range g.players {
		if p != player {
			return p
		}
	}
	return nil
}

// AttemptMove validates and applies a move by the named player from one
// square to another. It returns the player's total captured-pieces count.
// On error the board, counters and turn state are left unchanged.
func (g *Game) AttemptMove(name string, from, to checkers.Square) (int, error) {
	player, ok := g.Player(name)
	if !ok {
		return 0, g.reject(errors.ErrUnknownPlayer, name, from, to, "player not found")
	}
	opponent := g.opponentOf(player)

	if !from.InBounds() || !to.InBounds() {
		return 0, g.reject(errors.ErrInvalidSquare, name, from, to, "square location does not exist on the board")
	}

	if !g.board.Get(from).BelongsTo(player.Colour()) {
		return 0, g.reject(errors.ErrInvalidSquare, name, from, to, "player does not own the piece on the starting square location")
	}

	action := Classify(g.board, from, to)
	if action.Kind == Illegal {
		return 0, g.reject(errors.ErrInvalidSquare, name, from, to, action.Reason)
	}

	if reason := g.turn.authorize(player, action); reason != "" {
		return 0, g.reject(errors.ErrOutOfTurn, name, from, to, reason)
	}

	captured := applyAction(g.board, player, opponent, action)
	more := action.IsCapture() && HasCaptureFrom(g.board, to)
	flipped := g.turn.advance(player, action, more)
	rank, promoted := promote(g.board, player, to)

	g.log.Debug("action applied",
		zap.String("player", name),
		zap.Stringer("kind", action.Kind),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("captured", captured),
		zap.Int("total_captured", player.CapturedPiecesCount()),
		zap.Bool("turn_flipped", flipped),
	)
	if promoted {
		g.log.Info("piece promoted",
			zap.String("player", name),
			zap.Stringer("square", to),
			zap.Stringer("rank", rank),
		)
	}

	return player.CapturedPiecesCount(), nil
}

// reject builds the MoveError for a refused move and logs it.
func (g *Game) reject(kind error, name string, from, to checkers.Square, reason string) error {
	err := &errors.MoveError{
		Err:    kind,
		Player: name,
		From:   from.String(),
		To:     to.String(),
		Reason: reason,
	}
	g.log.Info("move rejected", zap.Error(err))
	return err
}

// CheckerDetails describes the piece on a square. Off-board squares
// produce ErrInvalidSquare.
func (g *Game) CheckerDetails(sq checkers.Square) (checkers.CheckerDetails, error) {
	if !sq.InBounds() {
		return checkers.NoChecker, &errors.MoveError{
			Err:    errors.ErrInvalidSquare,
			From:   sq.String(),
			Reason: "square location does not exist on the board",
		}
	}
	return g.board.Get(sq).Details(), nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *checkers.Board {
	return g.board.Copy()
}

// Turn returns a copy of the current turn state.
func (g *Game) Turn() TurnState {
	return g.turn
}

// CurrentTurn returns the colour whose turn it is.
func (g *Game) CurrentTurn() checkers.Colour {
	return g.turn.ToMove
}

// CurrentPlayerName returns the name of the player whose turn it is, or an
// empty string if no player holds that colour.
func (g *Game) CurrentPlayerName() string {
	for _, p := range g.players {
		if p.Colour() == g.turn.ToMove {
			return p.Name()
		}
	}
	return ""
}

// LegalActions lists the actions available to the piece on sq, ignoring
// turn order.
func (g *Game) LegalActions(sq checkers.Square) []Action {
	return LegalActions(g.board, sq)
}

// LoadPosition replaces the board with a copy of the given one and gives
// the turn to toMove. Any capture chain is discarded and the registered
// players' king and triple king counts are recounted from the board.
// Captured-pieces counts are kept.
func (g *Game) LoadPosition(board *checkers.Board, toMove checkers.Colour) {
	g.board = board.Copy()
	g.turn = newTurnState(toMove)
	for _, p := range g.players {
		p.SetPromotionCounts(
			g.board.CountRank(p.Colour(), checkers.King),
			g.board.CountRank(p.Colour(), checkers.TripleKing),
		)
	}
	g.log.Debug("position loaded", zap.Stringer("to_move", toMove))
}

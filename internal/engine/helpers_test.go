package engine

import (
	"testing"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/testutil"
)

const (
	whiteName = "Adam"
	blackName = "Lucy"
)

// newStartedGame returns a game in the starting position with Adam playing
// White and Lucy playing Black.
func newStartedGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(nil)
	if _, err := g.CreatePlayer(whiteName, checkers.White); err != nil {
		t.Fatalf("CreatePlayer(%q) error: %v", whiteName, err)
	}
	if _, err := g.CreatePlayer(blackName, checkers.Black); err != nil {
		t.Fatalf("CreatePlayer(%q) error: %v", blackName, err)
	}
	return g
}

// newPositionGame returns a started game loaded with the diagram position.
func newPositionGame(t *testing.T, diagram string, toMove checkers.Colour) *Game {
	t.Helper()
	g := newStartedGame(t)
	g.LoadPosition(testutil.MustBoard(t, diagram), toMove)
	return g
}

// mustMove applies a move that is expected to succeed and returns the
// mover's captured count.
func mustMove(t *testing.T, g *Game, name string, from, to checkers.Square) int {
	t.Helper()
	captured, err := g.AttemptMove(name, from, to)
	if err != nil {
		t.Fatalf("AttemptMove(%q, %v, %v) error: %v", name, from, to, err)
	}
	return captured
}

func mustPlayer(t *testing.T, g *Game, name string) *checkers.Player {
	t.Helper()
	p, ok := g.Player(name)
	if !ok {
		t.Fatalf("Player(%q) not registered", name)
	}
	return p
}

func boardRows(g *Game) []string {
	return testutil.Diagram(g.Board())
}

package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/engine"
	"github.com/lgbarn/super-checkers-go/internal/errors"
	"github.com/lgbarn/super-checkers-go/internal/testutil"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	testutil.AssertNoError(t, err)

	want := []PlayerSpec{{Name: "Adam", Colour: "White"}, {Name: "Lucy", Colour: "Black"}}
	testutil.AssertEqual(t, s.Players, want, "players")
	if got := len(s.Moves); got != 77 {
		t.Errorf("len(Moves) = %d, want 77", got)
	}

	first := s.Moves[0]
	testutil.AssertEqual(t, first, MoveSpec{Player: "Lucy", From: []int{5, 6}, To: []int{4, 7}}, "first move")
	testutil.AssertEqual(t, s.Moves[11].Note, "regular jump, continued, crowned", "move 12 note")
}

func TestRun_Demo(t *testing.T) {
	s, err := Default()
	testutil.AssertNoError(t, err)
	g := engine.NewGame(nil)

	result, err := Run(g, s, true)
	testutil.AssertNoError(t, err)
	if result.Applied != 77 || len(result.Rejections) != 0 || result.Stopped {
		t.Fatalf("Run() = %+v, want 77 applied and no rejections", result)
	}

	lucy, _ := g.Player("Lucy")
	adam, _ := g.Player("Adam")

	type counts struct{ Captured, Kings, TripleKings int }
	got := map[string]counts{
		"Lucy": {lucy.CapturedPiecesCount(), lucy.KingCount(), lucy.TripleKingCount()},
		"Adam": {adam.CapturedPiecesCount(), adam.KingCount(), adam.TripleKingCount()},
	}
	want := map[string]counts{
		"Lucy": {12, 0, 1},
		"Adam": {10, 0, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("final counters mismatch (-want +got):\n%s", diff)
	}

	testutil.AssertEqual(t, g.GameWinner(), "Lucy", "winner")
	testutil.AssertEqual(t, g.CurrentTurn(), checkers.White, "turn")

	wantBoard := testutil.DiagramRows(`
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . b
. . . . . . . .
. . . BT . . . .
. . . . . . . .
`)
	testutil.AssertEqual(t, testutil.Diagram(g.Board()), wantBoard, "final board")
}

func TestRun_ChainMovesKeepTurn(t *testing.T) {
	s, err := Default()
	testutil.AssertNoError(t, err)
	g := engine.NewGame(nil)

	// Replay move by move and note where the mover keeps the turn.
	short := &Script{Players: s.Players}
	_, err = Run(g, short, true)
	testutil.AssertNoError(t, err)

	var kept []int
	for i, m := range s.Moves {
		from, to := m.Squares()
		if _, err := g.AttemptMove(m.Player, from, to); err != nil {
			t.Fatalf("move %d %s: %v", i+1, m, err)
		}
		if g.CurrentPlayerName() == m.Player {
			kept = append(kept, i+1)
		}
	}

	want := []int{11, 20, 26, 41, 42, 71}
	testutil.AssertEqual(t, kept, want, "moves that keep the turn")
}

func TestRun_Rejections(t *testing.T) {
	s := &Script{
		Players: []PlayerSpec{{Name: "Adam", Colour: "White"}, {Name: "Lucy", Colour: "black"}},
		Moves: []MoveSpec{
			{Player: "Adam", From: []int{2, 1}, To: []int{3, 0}}, // Black moves first
			{Player: "Lucy", From: []int{5, 6}, To: []int{4, 7}},
			{Player: "Eve", From: []int{2, 1}, To: []int{3, 0}},
			{Player: "Adam", From: []int{2, 1}, To: []int{3, 0}},
		},
	}

	t.Run("skip", func(t *testing.T) {
		result, err := Run(engine.NewGame(nil), s, false)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, result.Applied, 2, "applied")
		if len(result.Rejections) != 2 {
			t.Fatalf("len(Rejections) = %d, want 2", len(result.Rejections))
		}
		testutil.AssertEqual(t, result.Rejections[0].Index, 1)
		testutil.AssertErrorIs(t, result.Rejections[0].Err, errors.ErrOutOfTurn)
		testutil.AssertEqual(t, result.Rejections[1].Index, 3)
		testutil.AssertErrorIs(t, result.Rejections[1].Err, errors.ErrUnknownPlayer)
	})

	t.Run("stop", func(t *testing.T) {
		result, err := Run(engine.NewGame(nil), s, true)
		testutil.AssertErrorIs(t, err, errors.ErrOutOfTurn)
		if !strings.Contains(err.Error(), "move 1") {
			t.Errorf("error %q does not name the move", err)
		}
		if !result.Stopped || result.Applied != 0 {
			t.Errorf("Run() = %+v, want stopped before any move", result)
		}
	})
}

func TestRun_DuplicatePlayer(t *testing.T) {
	s := &Script{Players: []PlayerSpec{{Name: "Adam", Colour: "White"}, {Name: "Adam", Colour: "Black"}}}
	_, err := Run(engine.NewGame(nil), s, false)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPlayer)
	if !strings.HasPrefix(err.Error(), `registering "Adam": `) {
		t.Errorf("error %q does not name the player being registered", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "moves.yaml",
			content: `
players:
  - {name: Adam, colour: White}
  - {name: Lucy, colour: Black}
moves:
  - {player: Lucy, from: [5, 6], to: [4, 7], note: opening}
`,
		},
		{
			name: "json",
			file: "moves.json",
			content: `{
  "players": [{"name": "Adam", "colour": "White"}, {"name": "Lucy", "colour": "Black"}],
  "moves": [{"player": "Lucy", "from": [5, 6], "to": [4, 7], "note": "opening"}]
}`,
		},
		{
			name: "notation",
			file: "moves.sck",
			content: `[White "Adam"]
[Black "Lucy"]
Lucy 56-47 {opening}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			s, err := Load(path)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(s.Players), 2, "players")
			testutil.AssertEqual(t, s.Moves, []MoveSpec{
				{Player: "Lucy", From: []int{5, 6}, To: []int{4, 7}, Note: "opening"},
			})
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	noExt := filepath.Join(dir, "moves")
	if err := os.WriteFile(noExt, []byte("players: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(noExt)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidScript)
}

func TestValidate(t *testing.T) {
	adam := PlayerSpec{Name: "Adam", Colour: "White"}
	valid := MoveSpec{Player: "Adam", From: []int{2, 1}, To: []int{3, 0}}

	tests := []struct {
		name    string
		script  Script
		wantErr bool
	}{
		{"valid", Script{Players: []PlayerSpec{adam}, Moves: []MoveSpec{valid}}, false},
		{"no moves", Script{Players: []PlayerSpec{adam}}, false},
		{"no players", Script{Moves: []MoveSpec{valid}}, true},
		{"three players", Script{Players: []PlayerSpec{adam, adam, adam}}, true},
		{"unnamed player", Script{Players: []PlayerSpec{{Colour: "Black"}}}, true},
		{"bad colour", Script{Players: []PlayerSpec{{Name: "Adam", Colour: "Red"}}}, true},
		{"move without player", Script{Players: []PlayerSpec{adam}, Moves: []MoveSpec{{From: []int{2, 1}, To: []int{3, 0}}}}, true},
		{"short square", Script{Players: []PlayerSpec{adam}, Moves: []MoveSpec{{Player: "Adam", From: []int{2}, To: []int{3, 0}}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.script.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidScript)
			}
		})
	}
}

func TestMoveSpec_String(t *testing.T) {
	testutil.AssertEqual(t, MoveSpec{Player: "Lucy", From: []int{5, 6}, To: []int{4, 7}}.String(), "Lucy (5, 6)->(4, 7)")
	testutil.AssertEqual(t, MoveSpec{Player: "Lucy", From: []int{5}, To: []int{4, 7}}.String(), "Lucy [5]->[4 7]")
}

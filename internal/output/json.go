package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/engine"
)

// JSONReport represents a game report in JSON format.
type JSONReport struct {
	GameID  string       `json:"gameId"`
	Players []JSONPlayer `json:"players"`
	Turn    string       `json:"turn"`
	Winner  string       `json:"winner,omitempty"` // empty while the game runs
	Board   [][]string   `json:"board,omitempty"`
}

// JSONPlayer represents a player's counters in JSON format.
type JSONPlayer struct {
	Name        string `json:"name"`
	Colour      string `json:"colour"`
	Captured    int    `json:"captured"`
	Kings       int    `json:"kings"`
	TripleKings int    `json:"tripleKings"`
}

// ReportToJSON converts a game to its JSON report. The board is included
// as rows of checker details when withBoard is set.
func ReportToJSON(game *engine.Game, withBoard bool) *JSONReport {
	report := &JSONReport{
		GameID:  game.ID,
		Players: make([]JSONPlayer, 0, 2),
		Turn:    game.CurrentTurn().String(),
	}

	for _, p := range game.Players() {
		report.Players = append(report.Players, JSONPlayer{
			Name:        p.Name(),
			Colour:      p.Colour().String(),
			Captured:    p.CapturedPiecesCount(),
			Kings:       p.KingCount(),
			TripleKings: p.TripleKingCount(),
		})
	}

	if name, ok := game.Winner(); ok {
		report.Winner = name
	}

	if withBoard {
		board := game.Board()
		report.Board = make([][]string, checkers.BoardSize)
		for row := range report.Board {
			report.Board[row] = make([]string, checkers.BoardSize)
			for col := range report.Board[row] {
				report.Board[row][col] = string(board.Get(checkers.Sq(row, col)).Details())
			}
		}
	}

	return report
}

// WriteJSON writes the game report as indented JSON.
func WriteJSON(w io.Writer, game *engine.Game, withBoard bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(game, withBoard))
}

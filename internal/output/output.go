// Package output renders boards and end-of-game reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/engine"
)

// RenderBoard writes the board as an 8x8 grid with row and column indices.
// Each square uses its three-character symbol, so unplayable squares ("###")
// stand apart from empty ones.
func RenderBoard(w io.Writer, board *checkers.Board) error {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < checkers.BoardSize; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, " %d ", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < checkers.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < checkers.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(board.Get(checkers.Sq(row, col)).Symbol())
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteReport writes each player's counters in registration order, followed
// by the side to move and the winner line.
func WriteReport(w io.Writer, game *engine.Game) error {
	var sb strings.Builder

	for _, p := range game.Players() {
		fmt.Fprintf(&sb, "%s (%s): captured %d, kings %d, triple kings %d\n",
			p.Name(), p.Colour(), p.CapturedPiecesCount(), p.KingCount(), p.TripleKingCount())
	}
	fmt.Fprintf(&sb, "Turn: %s", game.CurrentTurn())
	if name := game.CurrentPlayerName(); name != "" {
		fmt.Fprintf(&sb, " (%s)", name)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Winner: %s\n", game.GameWinner())

	_, err := io.WriteString(w, sb.String())
	return err
}

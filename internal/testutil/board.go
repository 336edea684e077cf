package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
)

// Board diagram tokens. A diagram is eight lines of eight whitespace
// separated tokens, row 0 first. "." marks an empty square; unplayable
// squares are implied by parity and must also be written as ".".
var diagramTokens = map[string]checkers.Cell{
	"b":  checkers.PieceCell(checkers.Black, checkers.Regular),
	"B":  checkers.PieceCell(checkers.Black, checkers.King),
	"BT": checkers.PieceCell(checkers.Black, checkers.TripleKing),
	"w":  checkers.PieceCell(checkers.White, checkers.Regular),
	"W":  checkers.PieceCell(checkers.White, checkers.King),
	"WT": checkers.PieceCell(checkers.White, checkers.TripleKing),
}

// ParseBoard builds a board from a diagram. Blank lines are ignored.
func ParseBoard(diagram string) (*checkers.Board, error) {
	var rows [][]string
	for _, line := range strings.Split(diagram, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	if len(rows) != checkers.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), checkers.BoardSize)
	}

	board := checkers.NewBoard()
	for row, fields := range rows {
		if len(fields) != checkers.BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, want %d", row, len(fields), checkers.BoardSize)
		}
		for col, token := range fields {
			if token == "." {
				continue
			}
			cell, ok := diagramTokens[token]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown token %q", row, col, token)
			}
			sq := checkers.Sq(row, col)
			if !sq.IsPlayable() {
				return nil, fmt.Errorf("row %d col %d: piece on an unplayable square", row, col)
			}
			board.Set(sq, cell)
		}
	}
	return board, nil
}

// MustBoard parses a diagram and calls t.Fatal if it is malformed.
func MustBoard(t *testing.T, diagram string) *checkers.Board {
	t.Helper()
	board, err := ParseBoard(diagram)
	if err != nil {
		t.Fatalf("invalid board diagram: %v\n%s", err, diagram)
	}
	return board
}

// Diagram renders a board in the format ParseBoard accepts, one string per
// row, which gives readable cmp diffs.
func Diagram(board *checkers.Board) []string {
	rows := make([]string, 0, checkers.BoardSize)
	for row := 0; row < checkers.BoardSize; row++ {
		tokens := make([]string, 0, checkers.BoardSize)
		for col := 0; col < checkers.BoardSize; col++ {
			tokens = append(tokens, tokenFor(board.Get(checkers.Sq(row, col))))
		}
		rows = append(rows, strings.Join(tokens, " "))
	}
	return rows
}

// DiagramRows splits a diagram literal into normalized rows for comparison
// with Diagram.
func DiagramRows(diagram string) []string {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, strings.Join(fields, " "))
		}
	}
	return rows
}

func tokenFor(cell checkers.Cell) string {
	for token, c := range diagramTokens {
		if c == cell {
			return token
		}
	}
	return "."
}

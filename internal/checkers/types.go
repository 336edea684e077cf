// Package checkers provides the core super-checkers types: colours, ranks,
// board cells, squares and the player record.
package checkers

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a regular piece of this colour moves by.
// Black advances toward row 0, White toward row 7.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// FarRow is the row a regular piece promotes to king on.
func (c Colour) FarRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// HomeRow is the row a king must reach to become a triple king.
func (c Colour) HomeRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// ParseColour converts "Black" or "White" (any case) to a Colour.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Black, fmt.Errorf("unknown colour %q", s)
}

// Rank is the promotion level of a piece.
type Rank int

const (
	Regular Rank = iota
	King
	TripleKing
)

// String returns the string representation of a rank.
func (r Rank) String() string {
	switch r {
	case King:
		return "King"
	case TripleKing:
		return "TripleKing"
	}
	return "Regular"
}

// CellKind distinguishes unplayable squares, empty playable squares and
// occupied squares.
type CellKind int

const (
	Unplayable CellKind = iota
	Empty
	Occupied
)

// Cell is the content of one board square. The zero value is Unplayable.
type Cell struct {
	Kind   CellKind
	Colour Colour
	Rank   Rank
}

// EmptyCell is a playable square with no piece.
var EmptyCell = Cell{Kind: Empty}

// UnplayableCell is a square no piece may ever occupy.
var UnplayableCell = Cell{Kind: Unplayable}

// PieceCell returns an occupied cell.
func PieceCell(colour Colour, rank Rank) Cell {
	return Cell{Kind: Occupied, Colour: colour, Rank: rank}
}

// IsPiece reports whether the cell holds a piece.
func (c Cell) IsPiece() bool {
	return c.Kind == Occupied
}

// IsEmpty reports whether the cell is a playable square with no piece.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// BelongsTo reports whether the cell holds a piece of the given colour.
func (c Cell) BelongsTo(colour Colour) bool {
	return c.Kind == Occupied && c.Colour == colour
}

// Symbol returns the three character board symbol for the cell.
func (c Cell) Symbol() string {
	switch c.Kind {
	case Unplayable:
		return "###"
	case Empty:
		return "   "
	}
	letter := "B"
	if c.Colour == White {
		letter = "W"
	}
	switch c.Rank {
	case King:
		return letter + " K"
	case TripleKing:
		return letter + "TK"
	}
	return " " + letter + " "
}

// String returns a readable description of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case Unplayable:
		return "Unplayable"
	case Empty:
		return "Empty"
	}
	return c.Colour.String() + " " + c.Rank.String()
}

// CheckerDetails is the external description of what sits on a square.
type CheckerDetails string

const (
	NoChecker              CheckerDetails = "None"
	BlackChecker           CheckerDetails = "Black"
	WhiteChecker           CheckerDetails = "White"
	BlackKingChecker       CheckerDetails = "Black_king"
	WhiteKingChecker       CheckerDetails = "White_king"
	BlackTripleKingChecker CheckerDetails = "Black_Triple_King"
	WhiteTripleKingChecker CheckerDetails = "White_Triple_King"
)

// Details converts a cell to its CheckerDetails. Empty and unplayable
// squares both report NoChecker.
func (c Cell) Details() CheckerDetails {
	if c.Kind != Occupied {
		return NoChecker
	}
	if c.Colour == Black {
		switch c.Rank {
		case King:
			return BlackKingChecker
		case TripleKing:
			return BlackTripleKingChecker
		}
		return BlackChecker
	}
	switch c.Rank {
	case King:
		return WhiteKingChecker
	case TripleKing:
		return WhiteTripleKingChecker
	}
	return WhiteChecker
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square identifies a board coordinate by row and column, both 0-7.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// IsPlayable reports whether pieces may stand on the square.
func (s Square) IsPlayable() bool {
	return s.InBounds() && (s.Row+s.Col)%2 == 1
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the square as "(row, col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

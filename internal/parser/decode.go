package parser

import (
	"fmt"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
)

// isDigit returns true if c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNameStart returns true if c may begin a player name.
func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isNameChar returns true if c may continue a player name.
func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

// DecodeSquare decodes a two-digit "rc" square such as "56" into row 5,
// column 6. Only the form is checked; off-board digits like "89" decode
// so the game can reject them.
func DecodeSquare(text string) (checkers.Square, error) {
	if len(text) != 2 || !isDigit(text[0]) || !isDigit(text[1]) {
		return checkers.Square{}, fmt.Errorf("bad square %q: want two digits row then column", text)
	}
	return checkers.Sq(int(text[0]-'0'), int(text[1]-'0')), nil
}

// EncodeSquare is the inverse of DecodeSquare.
func EncodeSquare(sq checkers.Square) string {
	return fmt.Sprintf("%d%d", sq.Row, sq.Col)
}

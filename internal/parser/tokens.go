// Package parser reads games written in move notation: tag pairs naming the
// players followed by a list of "Player rc-rc" moves with optional comments.
package parser

// TokenType identifies the kind of a lexical token.
type TokenType int

// Token types.
const (
	EOFToken TokenType = iota
	NoToken
	TagToken
	CommentToken
	NameToken
	SquareToken
	MoveSeparator
	CaptureSeparator
	ErrorToken
)

var tokenTypeNames = map[TokenType]string{
	EOFToken:         "EOF",
	NoToken:          "NO_TOKEN",
	TagToken:         "TAG",
	CommentToken:     "COMMENT",
	NameToken:        "NAME",
	SquareToken:      "SQUARE",
	MoveSeparator:    "MOVE_SEPARATOR",
	CaptureSeparator: "CAPTURE_SEPARATOR",
	ErrorToken:       "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text holds tag names, player names, comment text and raw squares
	Text string

	// Value holds a tag's quoted value
	Value string

	// Line for error reporting
	Line uint
}

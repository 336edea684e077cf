package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lexer tokenizes move-notation input.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	eof      bool
	lastType TokenType
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(r),
		lastType: NoToken,
	}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// readLine reads the next line from input. Lines starting with '%' are
// escape lines and are skipped whole.
func (l *Lexer) readLine() bool {
	for {
		line, err := l.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			l.eof = true
			l.line = ""
			l.pos = 0
			return false
		}
		l.lineNum++
		if strings.HasPrefix(line, "%") {
			if err != nil {
				l.eof = true
				return false
			}
			continue
		}
		l.line = line
		l.pos = 0
		return true
	}
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// peekChar returns the character after the current one or 0.
func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.line) {
		return 0
	}
	return l.line[l.pos+1]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipWhitespace moves past spaces and tabs on the current line.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.line) && isSpace(l.currentChar()) {
		l.advance()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			if token.Line == 0 {
				token.Line = l.lineNum
			}
			l.lastType = token.Type
			return token
		}
	}
}

// getNextSymbol identifies the next symbol. It returns a NoToken when it
// only consumed whitespace or a line ending.
func (l *Lexer) getNextSymbol() *Token {
	if l.eof {
		return &Token{Type: EOFToken}
	}
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	switch {
	case isSpace(ch):
		l.skipWhitespace()
		return &Token{Type: NoToken}
	case ch == '[':
		l.advance()
		return l.gatherTag()
	case ch == '{':
		l.advance()
		return l.gatherComment()
	case ch == ';':
		text := strings.TrimSpace(l.line[l.pos+1:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}
	case ch == '-':
		l.advance()
		return &Token{Type: MoveSeparator, Text: "-"}
	case (ch == 'x' || ch == 'X') && l.lastType == SquareToken && !isNameStart(l.peekChar()):
		l.advance()
		return &Token{Type: CaptureSeparator, Text: string(ch)}
	case isDigit(ch):
		return l.gatherSquare()
	case isNameStart(ch):
		return l.gatherName()
	default:
		l.advance()
		return &Token{Type: ErrorToken, Text: fmt.Sprintf("unexpected character %q", ch)}
	}
}

// gatherSquare gathers a run of digits.
func (l *Lexer) gatherSquare() *Token {
	start := l.pos
	for l.pos < len(l.line) && isDigit(l.currentChar()) {
		l.advance()
	}
	return &Token{Type: SquareToken, Text: l.line[start:l.pos]}
}

// gatherName gathers a player name.
func (l *Lexer) gatherName() *Token {
	start := l.pos
	for l.pos < len(l.line) && isNameChar(l.currentChar()) {
		l.advance()
	}
	return &Token{Type: NameToken, Text: l.line[start:l.pos]}
}

// gatherTag gathers a complete [Name "value"] tag pair after '['.
func (l *Lexer) gatherTag() *Token {
	line := l.lineNum
	l.skipWhitespace()

	start := l.pos
	for l.pos < len(l.line) && isNameChar(l.currentChar()) {
		l.advance()
	}
	if l.pos == start {
		l.pos = len(l.line)
		return &Token{Type: ErrorToken, Text: "missing tag name", Line: line}
	}
	name := l.line[start:l.pos]

	l.skipWhitespace()
	if l.currentChar() != '"' {
		l.pos = len(l.line)
		return &Token{Type: ErrorToken, Text: fmt.Sprintf("missing value for tag %s", name), Line: line}
	}
	l.advance()

	value, ok := l.gatherString()
	if !ok {
		return &Token{Type: ErrorToken, Text: fmt.Sprintf("missing closing quote in tag %s", name), Line: line}
	}

	l.skipWhitespace()
	if l.currentChar() != ']' {
		l.pos = len(l.line)
		return &Token{Type: ErrorToken, Text: fmt.Sprintf("missing ']' after tag %s", name), Line: line}
	}
	l.advance()

	return &Token{Type: TagToken, Text: name, Value: value, Line: line}
}

// gatherString gathers a quoted string after the opening quote. Backslash
// escapes the next character.
func (l *Lexer) gatherString() (string, bool) {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			return sb.String(), true
		}
		if ch == '\n' {
			break
		}
		sb.WriteByte(ch)
	}
	return sb.String(), false
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	line := l.lineNum
	var sb strings.Builder

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, Text: strings.Join(strings.Fields(sb.String()), " "), Line: line}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}

	return &Token{Type: ErrorToken, Text: "missing end of comment", Line: line}
}

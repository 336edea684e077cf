package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/errors"
)

// Tag is one [Name "value"] pair.
type Tag struct {
	Name  string
	Value string
}

// Move is one parsed move. Capture records whether it was written with an
// 'x' separator; the game decides what the move actually is.
type Move struct {
	Player  string
	From    checkers.Square
	To      checkers.Square
	Capture bool
	Comment string
	Line    uint
}

// Game is a parsed game: its tags in input order and its moves.
type Game struct {
	Tags      []Tag
	Moves     []Move
	StartLine uint
}

// GetTag returns the value of the first tag with the given name,
// compared case-insensitively.
func (g *Game) GetTag(name string) string {
	for _, t := range g.Tags {
		if strings.EqualFold(t.Name, name) {
			return t.Value
		}
	}
	return ""
}

// Parser parses move-notation input into Game structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// syntaxError reports a problem at the current token.
func (p *Parser) syntaxError(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidScript, "line %d: %s", p.currentToken.Line, fmt.Sprintf(format, args...))
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	// Comments ahead of the tags belong to no move.
	for p.currentToken.Type == CommentToken {
		p.nextToken()
	}
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	game := &Game{StartLine: p.currentToken.Line}

	for p.currentToken.Type == TagToken {
		game.Tags = append(game.Tags, Tag{Name: p.currentToken.Text, Value: p.currentToken.Value})
		p.nextToken()
	}

	if err := p.parseMoveList(game); err != nil {
		return nil, err
	}
	return game, nil
}

// ParseAllGames parses every game in the input.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// parseMoveList parses moves and their comments until the next tag
// section or the end of input.
func (p *Parser) parseMoveList(game *Game) error {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken:
			return nil
		case CommentToken:
			if n := len(game.Moves); n > 0 {
				game.Moves[n-1].Comment = joinComment(game.Moves[n-1].Comment, p.currentToken.Text)
			}
			p.nextToken()
		case NameToken:
			move, err := p.parseMove()
			if err != nil {
				return err
			}
			game.Moves = append(game.Moves, move)
		case ErrorToken:
			return p.syntaxError("%s", p.currentToken.Text)
		default:
			return p.syntaxError("unexpected %s %q, want a player name", p.currentToken.Type, p.currentToken.Text)
		}
	}
}

// parseMove parses "Player rc-rc" or "Player rcxrc".
func (p *Parser) parseMove() (Move, error) {
	move := Move{Player: p.currentToken.Text, Line: p.currentToken.Line}
	p.nextToken()

	from, err := p.parseSquare()
	if err != nil {
		return Move{}, err
	}
	move.From = from

	switch p.currentToken.Type {
	case MoveSeparator:
	case CaptureSeparator:
		move.Capture = true
	default:
		return Move{}, p.syntaxError("missing '-' or 'x' after %s", EncodeSquare(from))
	}
	p.nextToken()

	to, err := p.parseSquare()
	if err != nil {
		return Move{}, err
	}
	move.To = to
	return move, nil
}

// parseSquare decodes the current square token and advances past it.
func (p *Parser) parseSquare() (checkers.Square, error) {
	if p.currentToken.Type != SquareToken {
		return checkers.Square{}, p.syntaxError("unexpected %s %q, want a square", p.currentToken.Type, p.currentToken.Text)
	}
	sq, err := DecodeSquare(p.currentToken.Text)
	if err != nil {
		return checkers.Square{}, p.syntaxError("%v", err)
	}
	p.nextToken()
	return sq, nil
}

func joinComment(existing, text string) string {
	switch {
	case existing == "":
		return text
	case text == "":
		return existing
	default:
		return existing + " " + text
	}
}

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/errors"
	"github.com/lgbarn/super-checkers-go/internal/parser"
)

// ParseNotation reads every game in move notation from r. Each game's
// White and Black tags register its players in the order the tags appear.
func ParseNotation(r io.Reader) ([]*Script, error) {
	games, err := parser.NewParser(r).ParseAllGames()
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidScript, "no games found")
	}

	scripts := make([]*Script, 0, len(games))
	for _, g := range games {
		s, err := FromGame(g)
		if err != nil {
			return nil, errors.Wrapf(err, "game at line %d", g.StartLine)
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// FromGame converts a parsed game into a validated Script.
func FromGame(g *parser.Game) (*Script, error) {
	s := &Script{}
	for _, tag := range g.Tags {
		if _, err := checkers.ParseColour(tag.Name); err != nil {
			continue
		}
		s.Players = append(s.Players, PlayerSpec{Name: tag.Value, Colour: tag.Name})
	}
	for _, m := range g.Moves {
		s.Moves = append(s.Moves, MoveSpec{
			Player: m.Player,
			From:   []int{m.From.Row, m.From.Col},
			To:     []int{m.To.Row, m.To.Col},
			Note:   m.Comment,
		})
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteNotation writes a validated script in move notation, one move per
// line.
func WriteNotation(w io.Writer, s *Script) error {
	var sb strings.Builder
	for _, p := range s.Players {
		fmt.Fprintf(&sb, "[%s %q]\n", p.Colour, p.Name)
	}
	sb.WriteString("\n")
	for _, m := range s.Moves {
		from, to := m.Squares()
		fmt.Fprintf(&sb, "%s %s-%s", m.Player, parser.EncodeSquare(from), parser.EncodeSquare(to))
		if m.Note != "" {
			fmt.Fprintf(&sb, " {%s}", m.Note)
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

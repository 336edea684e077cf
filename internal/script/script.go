// Package script loads move scripts and plays them against a game.
package script

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/errors"
)

// NotationExt is the file extension of move-notation scripts.
const NotationExt = ".sck"

//go:embed demo.yaml
var demoScript []byte

// Script is a list of players to register followed by the moves to play.
type Script struct {
	Players []PlayerSpec `mapstructure:"players"`
	Moves   []MoveSpec   `mapstructure:"moves"`
}

// PlayerSpec registers one player.
type PlayerSpec struct {
	Name   string `mapstructure:"name"`
	Colour string `mapstructure:"colour"`
}

// MoveSpec is one move attempt. From and To are [row, col] pairs.
type MoveSpec struct {
	Player string `mapstructure:"player"`
	From   []int  `mapstructure:"from"`
	To     []int  `mapstructure:"to"`
	Note   string `mapstructure:"note"`
}

// Squares returns the move's source and destination squares.
func (m MoveSpec) Squares() (from, to checkers.Square) {
	return checkers.Sq(m.From[0], m.From[1]), checkers.Sq(m.To[0], m.To[1])
}

// String formats the move as "Player (r, c)->(r, c)".
func (m MoveSpec) String() string {
	if len(m.From) != 2 || len(m.To) != 2 {
		return fmt.Sprintf("%s %v->%v", m.Player, m.From, m.To)
	}
	from, to := m.Squares()
	return fmt.Sprintf("%s %s->%s", m.Player, from, to)
}

// Default returns the built-in demonstration game.
func Default() (*Script, error) {
	return Parse(bytes.NewReader(demoScript), "yaml")
}

// Load reads a script file. The format follows the file extension:
// yaml, yml, json or toml, or NotationExt for move notation. A notation
// file holding several games yields the first.
func Load(path string) (*Script, error) {
	scripts, err := LoadAll(path)
	if err != nil {
		return nil, err
	}
	return scripts[0], nil
}

// LoadAll reads every script in a file. Only move-notation files can hold
// more than one.
func LoadAll(path string) ([]*Script, error) {
	if strings.EqualFold(filepath.Ext(path), NotationExt) {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading script %s", path)
		}
		defer f.Close()
		scripts, err := ParseNotation(f)
		if err != nil {
			return nil, errors.Wrapf(err, "script %s", path)
		}
		return scripts, nil
	}

	s, err := loadConfigFormat(path)
	if err != nil {
		return nil, err
	}
	return []*Script{s}, nil
}

func loadConfigFormat(path string) (*Script, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return nil, errors.Wrapf(errors.ErrInvalidScript, "script %s has no extension", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(format)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading script %s", path)
	}
	return decode(v)
}

// Parse reads a script in the given format from r.
func Parse(r io.Reader, format string) (*Script, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrap(err, "parsing script")
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Script, error) {
	var s Script
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidScript, "decoding script: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the script's shape. Whether the moves are legal is left
// to the game.
func (s *Script) Validate() error {
	if len(s.Players) == 0 || len(s.Players) > 2 {
		return errors.Wrapf(errors.ErrInvalidScript, "want one or two players, got %d", len(s.Players))
	}
	for i, p := range s.Players {
		if p.Name == "" {
			return errors.Wrapf(errors.ErrInvalidScript, "player %d has no name", i)
		}
		if _, err := checkers.ParseColour(p.Colour); err != nil {
			return errors.Wrapf(errors.ErrInvalidScript, "player %q: %v", p.Name, err)
		}
	}
	for i, m := range s.Moves {
		if m.Player == "" {
			return errors.Wrapf(errors.ErrInvalidScript, "move %d has no player", i+1)
		}
		if len(m.From) != 2 || len(m.To) != 2 {
			return errors.Wrapf(errors.ErrInvalidScript, "move %d: squares must be [row, col] pairs", i+1)
		}
	}
	return nil
}

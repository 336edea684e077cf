package script

import (
	"github.com/lgbarn/super-checkers-go/internal/checkers"
	"github.com/lgbarn/super-checkers-go/internal/engine"
	"github.com/lgbarn/super-checkers-go/internal/errors"
)

// Rejection records a move the game refused.
type Rejection struct {
	Index int // 1-based position in the script
	Move  MoveSpec
	Err   error
}

// Result summarizes a script run.
type Result struct {
	Applied    int
	Rejections []Rejection
	Stopped    bool // the run ended early on a rejection
}

// Run registers the script's players with the game and attempts every
// move in order. Rejected moves are recorded and skipped, unless
// stopOnError is set, in which case Run returns the first rejection as
// its error together with the partial result.
func Run(game *engine.Game, s *Script, stopOnError bool) (*Result, error) {
	for _, p := range s.Players {
		colour, err := checkers.ParseColour(p.Colour)
		if err != nil {
			return nil, errors.Wrapf(err, "registering %q", p.Name)
		}
		if _, err := game.CreatePlayer(p.Name, colour); err != nil {
			return nil, errors.Wrapf(err, "registering %q", p.Name)
		}
	}

	result := &Result{}
	for i, m := range s.Moves {
		from, to := m.Squares()
		if _, err := game.AttemptMove(m.Player, from, to); err != nil {
			result.Rejections = append(result.Rejections, Rejection{Index: i + 1, Move: m, Err: err})
			if stopOnError {
				result.Stopped = true
				return result, errors.Wrapf(err, "move %d", i+1)
			}
			continue
		}
		result.Applied++
	}
	return result, nil
}

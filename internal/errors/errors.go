// Package errors provides sentinel errors and error types for the
// super-checkers engine. It defines the failure kinds a move can produce and
// a structured error type that preserves move context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnknownPlayer indicates a move requested for an unregistered name.
	ErrUnknownPlayer = errors.New("unknown player")

	// ErrInvalidSquare indicates an off-board coordinate, a source square
	// without one of the player's pieces, or an illegal move for the rank.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrOutOfTurn indicates a move by the inactive colour or a broken
	// capture chain.
	ErrOutOfTurn = errors.New("out of turn")

	// ErrInvalidPlayer indicates a rejected player registration.
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidScript indicates a malformed move script.
	ErrInvalidScript = errors.New("invalid move script")
)

// MoveError wraps errors with move context: the acting player, the source
// and destination squares, and a short reason. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	Player string // Name of the player attempting the move
	From   string // Source square, formatted "(r, c)"
	To     string // Destination square, formatted "(r, c)"
	Reason string // Human readable detail (may be empty)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, fmt.Sprintf("player %q", e.Player))
	}

	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s->%s", e.From, e.To))
	} else if e.From != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	context := strings.Join(parts, ", ")

	msg := "move rejected"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}

	if context == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", context, msg)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

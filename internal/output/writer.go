package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/super-checkers-go/internal/engine"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReportWriter is the interface for writing a finished game.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteGame writes the game's board and report.
	WriteGame(game *engine.Game) error
}

// TextWriter writes the board grid and the plain report.
type TextWriter struct {
	w         io.Writer
	showBoard bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showBoard bool) *TextWriter {
	return &TextWriter{w: w, showBoard: showBoard}
}

// WriteGame writes the board (if enabled), a blank line and the report.
func (tw *TextWriter) WriteGame(game *engine.Game) error {
	if tw.showBoard {
		if err := RenderBoard(tw.w, game.Board()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	return WriteReport(tw.w, game)
}

// JSONWriter writes the report as a single JSON document.
type JSONWriter struct {
	w         io.Writer
	showBoard bool
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, showBoard bool) *JSONWriter {
	return &JSONWriter{w: w, showBoard: showBoard}
}

// WriteGame writes the game report in JSON format.
func (jw *JSONWriter) WriteGame(game *engine.Game) error {
	return WriteJSON(jw.w, game, jw.showBoard)
}

// NewReportWriter returns the writer for the named format.
func NewReportWriter(format string, w io.Writer, showBoard bool) (ReportWriter, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w, showBoard), nil
	case FormatJSON:
		return NewJSONWriter(w, showBoard), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

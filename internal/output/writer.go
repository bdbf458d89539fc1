// Package output writes replay results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/animalchess-go/internal/processing"
)

// ResultWriter is the interface for writing replay results.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *processing.Result) error

	// Close writes any pending output. Batch writers (JSON) emit
	// everything here.
	Close() error
}

// TextWriter writes one summary line per result, optionally followed by
// the final board.
type TextWriter struct {
	w         io.Writer
	showBoard bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showBoard bool) *TextWriter {
	return &TextWriter{w: w, showBoard: showBoard}
}

// WriteResult writes the summary line for r.
func (tw *TextWriter) WriteResult(r *processing.Result) error {
	if _, err := fmt.Fprintln(tw.w, r.Summary()); err != nil {
		return err
	}
	if tw.showBoard && r.Board != nil {
		if _, err := fmt.Fprintln(tw.w, r.Board.String()); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as one JSON document on Close.
type JSONWriter struct {
	w         io.Writer
	showBoard bool
	results   []*JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, showBoard bool) *JSONWriter {
	return &JSONWriter{w: w, showBoard: showBoard, results: make([]*JSONResult, 0)}
}

// WriteResult buffers r.
func (jw *JSONWriter) WriteResult(r *processing.Result) error {
	jw.results = append(jw.results, ResultToJSON(r, jw.showBoard))
	return nil
}

// Close writes all buffered results.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})
	jw.results = jw.results[:0]
	return err
}

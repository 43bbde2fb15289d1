package output

import (
	"io"

	"github.com/lgbarn/chessgeo-go/internal/config"
	"github.com/lgbarn/chessgeo-go/internal/worker"
)

// PositionWriter is the interface for writing analysis results.
// Different implementations handle different output formats (text, JSON).
type PositionWriter interface {
	// WritePosition writes a single result to the output.
	WritePosition(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.JSON.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	if cfg.Output.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes plain text reports.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WritePosition writes a result as text.
func (tw *TextWriter) WritePosition(r worker.ProcessResult) error {
	cfg := *tw.cfg
	cfg.OutputFile = tw.w
	OutputPosition(r, &cfg)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []worker.ProcessResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]worker.ProcessResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WritePosition buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(r worker.ProcessResult) error {
	if jw.single {
		cfg := *jw.cfg
		cfg.OutputFile = jw.w
		return OutputPositionJSON(r, &cfg)
	}

	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	err := OutputPositionsJSON(jw.results, jw.cfg, jw.w)

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

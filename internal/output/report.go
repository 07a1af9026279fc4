package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/termchess-go/internal/engine"
)

// PerftReport is the outcome of one perft run.
type PerftReport struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideEntry
	Elapsed time.Duration
}

// NodesPerSecond returns the search speed, or 0 if no time elapsed.
func (r *PerftReport) NodesPerSecond() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed.Seconds())
}

// ReportWriter is the interface for writing perft reports.
// Implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *PerftReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// TextWriter writes reports as divide lines followed by the total.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report in text form.
func (tw *TextWriter) WriteReport(r *PerftReport) error {
	for _, d := range r.Divide {
		if _, err := fmt.Fprintf(tw.w, "%s: %d\n", d.Move, d.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tw.w, "\nDepth %d: %d nodes in %v (%d nps)\n",
		r.Depth, r.Nodes, r.Elapsed.Round(time.Millisecond), r.NodesPerSecond())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONReport is a perft report in JSON form.
type JSONReport struct {
	FEN       string       `json:"fen"`
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	Divide    []JSONDivide `json:"divide,omitempty"`
	ElapsedMS int64        `json:"elapsedMs"`
	NPS       uint64       `json:"nps"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *PerftReport) *JSONReport {
	jr := &JSONReport{
		FEN:       r.FEN,
		Depth:     r.Depth,
		Nodes:     r.Nodes,
		ElapsedMS: r.Elapsed.Milliseconds(),
		NPS:       r.NodesPerSecond(),
	}
	for _, d := range r.Divide {
		jr.Divide = append(jr.Divide, JSONDivide{Move: d.Move, Nodes: d.Nodes})
	}
	return jr
}

// JSONWriter writes reports as JSON.
// It buffers reports and writes them as an array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*PerftReport
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports until Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *PerftReport) error {
	if jw.single {
		return jw.encode(ReportToJSON(r))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{Reports: make([]*JSONReport, 0, len(jw.reports))}
	for _, r := range jw.reports {
		out.Reports = append(out.Reports, ReportToJSON(r))
	}
	jw.reports = jw.reports[:0]
	return jw.encode(out)
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

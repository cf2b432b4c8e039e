// Package diag implements the assembler's diagnostic channel: a single
// growing list of (file, line, severity, text) messages that every stage of
// the pipeline may append to.
package diag

import (
	"fmt"
	"io"
)

// Severity is the kind of a diagnostic. The assembler currently only ever
// emits Error, but the type exists so callers don't compare against a bare
// string.
type Severity string

// Error is the only severity the assembler emits today.
const Error Severity = "Error"

// Diagnostic is one accumulated message, optionally tied to a source
// position. File and Line are both empty/zero when the diagnostic has no
// file context (e.g. a CLI flag error).
type Diagnostic struct {
	File     string
	Line     int // 0 means "no line"
	Severity Severity
	Text     string
}

func (d Diagnostic) String() string {
	switch {
	case d.File != "" && d.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Severity, d.Text)
	case d.File != "":
		return fmt.Sprintf("%s: %s: %s", d.File, d.Severity, d.Text)
	default:
		return fmt.Sprintf("%s: %s", d.Severity, d.Text)
	}
}

// List accumulates diagnostics across a whole assembly run. The zero value
// is ready to use, with no limit on how many diagnostics Print shows.
type List struct {
	items []Diagnostic
	limit int // 0 means unlimited
}

// Add appends a diagnostic carrying file/line context.
func (l *List) Add(file string, line int, severity Severity, format string, args ...any) {
	l.items = append(l.items, Diagnostic{
		File:     file,
		Line:     line,
		Severity: severity,
		Text:     fmt.Sprintf(format, args...),
	})
}

// AddGlobal appends a diagnostic with no file/line context, e.g. a CLI flag
// error that precedes any source file being read.
func (l *List) AddGlobal(severity Severity, format string, args ...any) {
	l.items = append(l.items, Diagnostic{
		Severity: severity,
		Text:     fmt.Sprintf(format, args...),
	})
}

// SetLimit caps how many diagnostics Print will show; 0 (the zero value)
// means unlimited. It does not affect HasErrors or Items, only Print's
// output.
func (l *List) SetLimit(n int) {
	l.limit = n
}

// HasErrors reports whether any diagnostic has been recorded.
func (l *List) HasErrors() bool {
	return len(l.items) > 0
}

// Items returns the accumulated diagnostics in recording order.
func (l *List) Items() []Diagnostic {
	return l.items
}

// Print writes the "Assembler messages:" banner followed by every
// diagnostic, one per line, in recording order. When a limit has been set
// via SetLimit and there are more diagnostics than that, printing stops
// after the limit and a final line reports how many were suppressed.
func (l *List) Print(w io.Writer) {
	if len(l.items) == 0 {
		return
	}
	fmt.Fprintln(w, "Assembler messages:")

	shown := l.items
	truncated := 0
	if l.limit > 0 && len(l.items) > l.limit {
		shown = l.items[:l.limit]
		truncated = len(l.items) - l.limit
	}
	for _, d := range shown {
		fmt.Fprintln(w, d.String())
	}
	if truncated > 0 {
		fmt.Fprintf(w, "%d more diagnostic(s) suppressed\n", truncated)
	}
}

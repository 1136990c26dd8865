// Package report collects per-line diagnostics of a conversion run.
// Diagnostics are recoverable findings that are reported to the user but do
// not abort the conversion, in contrast to fatal format errors.
package report

import "fmt"

// Kind describes the category of a diagnostic.
type Kind int

// Diagnostic kinds.
const (
	ChecksumMismatch Kind = iota
	UnknownToken
	PointerMismatch
	SequenceError
	LooseBrace
)

// String returns the user facing name of the diagnostic kind.
func (k Kind) String() string {
	switch k {
	case ChecksumMismatch:
		return "checksum mismatch"
	case UnknownToken:
		return "unknown token"
	case PointerMismatch:
		return "pointer mismatch"
	case SequenceError:
		return "sequence error"
	case LooseBrace:
		return "loose brace"
	default:
		return "unknown"
	}
}

// NoLine marks a diagnostic that can not be attributed to a BASIC line number.
const NoLine = -1

// Diagnostic describes a single per-line finding.
type Diagnostic struct {
	Line   int // BASIC line number, NoLine if unknown
	Kind   Kind
	Detail string
}

// String formats the diagnostic for user output.
func (d Diagnostic) String() string {
	if d.Line == NoLine {
		return fmt.Sprintf("%s (%s)", d.Kind, d.Detail)
	}
	return fmt.Sprintf("line %d: %s (%s)", d.Line, d.Kind, d.Detail)
}

// Report accumulates diagnostics over a conversion run.
type Report struct {
	diagnostics []Diagnostic
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Add records a diagnostic for the given BASIC line number.
func (r *Report) Add(line int, kind Kind, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Line:   line,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	})
}

// Append adds already constructed diagnostics to the report.
func (r *Report) Append(diagnostics ...Diagnostic) {
	r.diagnostics = append(r.diagnostics, diagnostics...)
}

// Diagnostics returns all recorded diagnostics in insertion order.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int {
	return len(r.diagnostics)
}

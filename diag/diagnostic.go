package diag

import "fmt"

// Diagnostic codes emitted by the check driver.
const (
	// CodeLineLength flags a physical line whose display width exceeds
	// the configured budget.
	CodeLineLength = "W001"
	// CodeSpacing flags a candidate CJK/Latin or CJK/Digit spacing
	// position.
	CodeSpacing = "W002"
)

// Diagnostic is an immutable record of one issue found in a file.
type Diagnostic struct {
	// Filename is empty for standard input; the renderer substitutes
	// "<stdin>" in that case.
	Filename string
	Range    Range
	Code     string
	Message  string
}

// New builds a Diagnostic.
func New(filename string, r Range, code, message string) Diagnostic {
	return Diagnostic{Filename: filename, Range: r, Code: code, Message: message}
}

// LineLength builds a W001 diagnostic for a line exceeding maxWidth
// columns, per spec.md §4.6.
func LineLength(filename string, r Range, maxWidth int) Diagnostic {
	return New(filename, r, CodeLineLength, fmt.Sprintf("Line length exceeds %d characters", maxWidth))
}

// Spacing builds a W002 diagnostic for a candidate spacing position, per
// spec.md §4.6.
func Spacing(filename string, r Range) Diagnostic {
	return New(filename, r, CodeSpacing, "Possible spacing position found")
}

// String renders the diagnostic the way the CLI prints it without
// colorization: "<filename>:<line+1>:<column+1>: <code> <message>".
func (d Diagnostic) String() string {
	name := d.Filename
	if name == "" {
		name = "<stdin>"
	}
	return fmt.Sprintf("%s:%d:%d: %s %s", name, d.Range.Start.Line+1, d.Range.Start.Column+1, d.Code, d.Message)
}

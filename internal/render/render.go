// Package render formats diagnostics for terminal output, optionally
// colorized with lipgloss, per spec.md §6: "filename bold, separators
// cyan, code yellow".
package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/sgryjp/cjkfmt/diag"
)

// ColorMode selects when to emit ANSI color codes.
type ColorMode int

const (
	// ColorAuto colorizes only when the destination looks like a
	// terminal; callers decide that upstream and pass the result in as
	// Always or Never.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var (
	filenameStyle  = lipgloss.NewStyle().Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Diagnostic renders one diagnostic line in the format
// "<filename>:<line+1>:<column+1>: <code> <message>".
func Diagnostic(d diag.Diagnostic, mode ColorMode) string {
	name := d.Filename
	if name == "" {
		name = "<stdin>"
	}

	if mode == ColorNever {
		return d.String()
	}

	sep := separatorStyle.Render(":")
	return filenameStyle.Render(name) + sep +
		lineColumn(d, sep) + sep + " " +
		codeStyle.Render(d.Code) + " " + d.Message
}

func lineColumn(d diag.Diagnostic, sep string) string {
	return strconv.Itoa(d.Range.Start.Line+1) + sep + strconv.Itoa(d.Range.Start.Column+1)
}

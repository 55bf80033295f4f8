// Package check composes the line breaker and the spacing analyzer over
// a whole document, producing diagnostics, per spec.md §4.6.
package check

import (
	"sort"

	"github.com/sgryjp/cjkfmt/diag"
	"github.com/sgryjp/cjkfmt/graphemes"
	"github.com/sgryjp/cjkfmt/internal/cjkconfig"
	"github.com/sgryjp/cjkfmt/internal/parsedoc"
	"github.com/sgryjp/cjkfmt/linebreak"
	"github.com/sgryjp/cjkfmt/spacing"
	"github.com/sgryjp/cjkfmt/textio"
)

// File runs the check driver over content, classified by grammar, and
// returns every diagnostic in increasing (line, column) order per
// spec.md §5's ordering guarantee. filename is attached to each
// diagnostic; pass "" for standard input.
func File(cfg cjkconfig.Config, filename string, grammar parsedoc.Grammar, content string) ([]diag.Diagnostic, error) {
	if err := cfg.Spacing.Validate(); err != nil {
		return nil, err
	}

	breaker, err := linebreak.New(cfg.MaxWidth, linebreak.WithAmbiguousWidth(cfg.AmbiguousWidth))
	if err != nil {
		return nil, err
	}

	proseRanges, parseErr := parsedoc.ProseRanges(grammar, []byte(content))

	var diagnostics []diag.Diagnostic
	lineIndex := 0
	lineStart := 0

	iter := textio.FromString(content)
	for iter.Next() {
		line := iter.Text()

		if d, ok := checkLineLength(breaker, filename, cfg.MaxWidth, lineIndex, line); ok {
			diagnostics = append(diagnostics, d)
		}

		diagnostics = append(diagnostics, checkSpacing(cfg.Spacing, filename, lineIndex, lineStart, line, proseRanges)...)

		lineIndex++
		lineStart += len(line)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		return diagnostics[i].Range.Start.Less(diagnostics[j].Range.Start)
	})

	return diagnostics, parseErr
}

func checkLineLength(breaker *linebreak.LineBreaker, filename string, maxWidth, lineIndex int, line string) (diag.Diagnostic, bool) {
	bp := breaker.Next(line)
	if bp.Kind() != linebreak.KindWrapPoint {
		return diag.Diagnostic{}, false
	}

	overflowPos := bp.OverflowPos()
	startCol := diag.UTF16Len(line[:overflowPos])
	endCol := startCol + nextGraphemeUTF16Len(line, overflowPos)

	r := diag.Range{
		Start: diag.Position{Line: lineIndex, Column: startCol},
		End:   diag.Position{Line: lineIndex, Column: endCol},
	}
	return diag.LineLength(filename, r, maxWidth), true
}

func checkSpacing(cfg spacing.Config, filename string, lineIndex, lineStart int, line string, proseRanges []parsedoc.Range) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	for _, j := range spacing.SearchPossiblePositions(cfg, line) {
		if !inProse(proseRanges, lineStart+j) {
			continue
		}

		startCol := diag.UTF16Len(line[:j])
		endCol := startCol + nextGraphemeUTF16Len(line, j)

		r := diag.Range{
			Start: diag.Position{Line: lineIndex, Column: startCol},
			End:   diag.Position{Line: lineIndex, Column: endCol},
		}
		diagnostics = append(diagnostics, diag.Spacing(filename, r))
	}
	return diagnostics
}

// inProse reports whether the given absolute byte offset falls inside
// one of the document's prose ranges.
func inProse(ranges []parsedoc.Range, offset int) bool {
	for _, r := range ranges {
		if offset >= r.Start && offset < r.End {
			return true
		}
	}
	return false
}

// nextGraphemeUTF16Len returns the UTF-16 length of the grapheme cluster
// starting at byte offset pos in line, or 0 if pos is at or past the end
// of line.
func nextGraphemeUTF16Len(line string, pos int) int {
	if pos >= len(line) {
		return 0
	}
	iter := graphemes.FromString(line[pos:])
	if !iter.Next() {
		return 0
	}
	return diag.UTF16Len(iter.Text())
}

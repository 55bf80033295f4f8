// Package eastasian computes East Asian display widths for codepoints and
// grapheme clusters, per the Unicode Standard Annex #11 categories
// referenced by spec.md §3/§4.3. The width table itself is borrowed from
// github.com/mattn/go-runewidth, the same library clipperhouse/uax29 uses
// (in its graphemes/comparative benchmark) to measure grapheme display
// width against its own segmenter.
package eastasian

import (
	"github.com/mattn/go-runewidth"
)

// AmbiguousWidth selects how codepoints in the Unicode Ambiguous East
// Asian Width category are measured.
type AmbiguousWidth int

const (
	// Narrow treats Ambiguous-width codepoints as occupying a single
	// column.
	Narrow AmbiguousWidth = iota
	// Wide treats Ambiguous-width codepoints as occupying two columns.
	// This is the default, matching legacy East Asian terminal behavior.
	Wide
)

// String renders the AmbiguousWidth as its JSON-style name.
func (a AmbiguousWidth) String() string {
	if a == Narrow {
		return "Narrow"
	}
	return "Wide"
}

// RuneWidth returns the display width, in columns, of a single codepoint
// under the given Ambiguous policy.
func RuneWidth(r rune, ambiguous AmbiguousWidth) int {
	cond := runewidth.Condition{
		EastAsianWidth: ambiguous == Wide,
	}
	return cond.RuneWidth(r)
}

// StringWidth returns the sum of the display widths of the codepoints in
// s, under the given Ambiguous policy. A grapheme cluster spanning several
// codepoints (e.g. a ZWJ sequence) is thus measured as the sum of its
// codepoints' widths, the same measure the line breaker uses.
func StringWidth(s string, ambiguous AmbiguousWidth) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r, ambiguous)
	}
	return width
}

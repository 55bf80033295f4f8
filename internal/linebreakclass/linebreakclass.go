// Package linebreakclass classifies codepoints into the small subset of
// UAX #14 (https://unicode.org/reports/tr14/) line-break classes the
// backtrack procedure in spec.md §4.3 needs: AL (Alphabetic), BA (Break
// After), BB (Break Before), B2 (Break Before and After), SP (Space).
// Everything else classifies as Other, for which a break is always
// allowed. Each codepoint maps to exactly one Class (a plain enum, not a
// bitmask), narrowed to the handful of classes the kinsoku backtrack
// actually branches on.
package linebreakclass

import "unicode"

// Class is a UAX #14 line-break class, restricted to the classes the
// backtrack procedure inspects.
type Class int

const (
	Other Class = iota
	Alphabetic
	BreakAfter
	BreakBefore
	BreakBeforeAndAfter
	Space
)

// alphabeticRanges approximates the UAX #14 AL class: letters and marks
// that behave like ordinary word characters for line-breaking purposes.
// CJK ideographs, kana, and hangul are excluded -- in this module they are
// handled by the kinsoku prohibited-start/prohibited-end sets instead, not
// by AL/AL word cohesion.
var alphabeticRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{'A', 'Z', 1},
		{'a', 'z', 1},
		{0x00C0, 0x024F, 1},
		{0x0250, 0x02FF, 1},
		{0x0370, 0x03FF, 1}, // Greek
		{0x0400, 0x04FF, 1}, // Cyrillic
	},
}

// breakAfterSet is a small set of codepoints classified BA (break
// opportunity after, but not before): hyphen-minus and the soft hyphen.
var breakAfterSet = map[rune]bool{
	'-': true,
	0x00AD: true, // soft hyphen
}

// breakBeforeSet is the BB class: currently unused by the default kinsoku
// tables (which instead enumerate prohibited-start clusters directly), but
// kept so a caller-supplied prohibited set can still interact correctly
// with UAX #14 word cohesion.
var breakBeforeSet = map[rune]bool{}

// breakBeforeAndAfterSet is the B2 class (em dash and similar): never
// break adjacent to these on either side.
var breakBeforeAndAfterSet = map[rune]bool{
	0x2014: true, // em dash
}

// Of classifies a single codepoint.
func Of(r rune) Class {
	switch {
	case r == ' ':
		return Space
	case breakBeforeAndAfterSet[r]:
		return BreakBeforeAndAfter
	case breakAfterSet[r]:
		return BreakAfter
	case breakBeforeSet[r]:
		return BreakBefore
	case unicode.Is(alphabeticRanges, r):
		return Alphabetic
	default:
		return Other
	}
}

// Breakable reports whether UAX #14 permits a break between the grapheme
// cluster ending in codepoint p and the one starting with codepoint f, per
// the table in spec.md §4.3.
func Breakable(p, f rune) bool {
	pc, fc := Of(p), Of(f)

	switch {
	case pc == BreakAfter:
		return false
	case fc == BreakBefore:
		return false
	case pc == BreakBeforeAndAfter || fc == BreakBeforeAndAfter:
		return false
	case pc == Alphabetic && fc == Alphabetic:
		return false
	case fc == Space:
		return false
	default:
		return true
	}
}

// Package charclass classifies codepoints into the coarse character types
// that drive the spacing analyzer's CJK vs. Latin/Digit distinction.
// Classification is range-based, mirroring the style of
// clipperhouse/uax29's "is" package (unicode.RangeTable plus
// golang.org/x/text/unicode/rangetable to merge ranges), but narrowed to
// the five-way split this module needs instead of the full UAX #29
// property set.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Type is a coarse classification of a codepoint.
type Type int

const (
	Other Type = iota
	Cjk
	Latin
	Digit
	Space
)

func (t Type) String() string {
	switch t {
	case Cjk:
		return "Cjk"
	case Latin:
		return "Latin"
	case Digit:
		return "Digit"
	case Space:
		return "Space"
	default:
		return "Other"
	}
}

// cjkRanges enumerates the CJK ideographic, kana, and hangul blocks a
// codepoint must fall in to be considered CJK, before punctuation is
// excluded.
var cjkRanges = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{0x3400, 0x4DBF, 1}}},                   // CJK Ext-A
	&unicode.RangeTable{R16: []unicode.Range16{{0x4E00, 0x9FFF, 1}}},                   // CJK Unified Ideographs
	&unicode.RangeTable{R16: []unicode.Range16{{0x2E80, 0x2EFF, 1}}},                   // CJK Radicals Supplement
	&unicode.RangeTable{R16: []unicode.Range16{{0x3000, 0x303F, 1}}},                   // CJK Symbols and Punctuation
	&unicode.RangeTable{R16: []unicode.Range16{{0x3040, 0x309F, 1}}},                   // Hiragana
	&unicode.RangeTable{R16: []unicode.Range16{{0x30A0, 0x30FF, 1}}},                   // Katakana
	&unicode.RangeTable{R16: []unicode.Range16{{0x3100, 0x312F, 1}}},                   // Bopomofo
	&unicode.RangeTable{R16: []unicode.Range16{{0xAC00, 0xD7AF, 1}}},                   // Hangul Syllables
	&unicode.RangeTable{R32: []unicode.Range32{{0x20000, 0x2A6DF, 1}}},                 // CJK Ext-B
	&unicode.RangeTable{R32: []unicode.Range32{{0x2A700, 0x2B73F, 1}}},                 // CJK Ext-C
	&unicode.RangeTable{R32: []unicode.Range32{{0x2B740, 0x2B81F, 1}}},                 // CJK Ext-D
	&unicode.RangeTable{R32: []unicode.Range32{{0x2B820, 0x2CEAF, 1}}},                 // CJK Ext-E
	&unicode.RangeTable{R32: []unicode.Range32{{0x2CEB0, 0x2EBEF, 1}}},                 // CJK Ext-F
	&unicode.RangeTable{R32: []unicode.Range32{{0x2EBF0, 0x2EE5D, 1}}},                 // CJK Ext-I
	&unicode.RangeTable{R32: []unicode.Range32{{0x30000, 0x3134F, 1}}},                 // CJK Ext-G
	&unicode.RangeTable{R32: []unicode.Range32{{0x31350, 0x323AF, 1}}},                 // CJK Ext-H
)

// cjkPunctuationCategories are the Unicode general categories that must be
// reclassified away from Cjk even when the codepoint falls in a CJK block,
// per spec.md §4.4.
var cjkPunctuationCategories = []*unicode.RangeTable{
	unicode.Pc, unicode.Pd, unicode.Pe, unicode.Pf, unicode.Pi, unicode.Po, unicode.Ps,
}

var latinRanges = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{
		{'A', 'Z', 1},
		{'a', 'z', 1},
		{0x00C0, 0x00FF, 1}, // Latin-1 Supplement
		{0x0100, 0x017F, 1}, // Latin Extended-A
		{0x0180, 0x024F, 1}, // Latin Extended-B
		{0x0250, 0x02AF, 1}, // IPA Extensions
		{0x02B0, 0x02FF, 1}, // Spacing Modifier Letters
		{0x0300, 0x036F, 1}, // Combining Diacritical Marks
		{0x1AB0, 0x1AFF, 1}, // Combining Diacritical Marks Extended
		{0x1DC0, 0x1DFF, 1}, // Combining Diacritical Marks Supplement
		{0x1E00, 0x1EFF, 1}, // Latin Extended Additional
		{0x2C60, 0x2C7F, 1}, // Latin Extended-C
		{0xA720, 0xA7FF, 1}, // Latin Extended-D
		{0xAB30, 0xAB6F, 1}, // Latin Extended-E
	}},
	&unicode.RangeTable{R32: []unicode.Range32{
		{0x10780, 0x107BF, 1}, // Latin Extended-F
		{0x1DF00, 0x1DFFF, 1}, // Latin Extended-G
	}},
)

// Of classifies a single codepoint.
func Of(c rune) Type {
	switch {
	case c == ' ' || c == '\r' || c == '\n':
		return Space
	case c >= '0' && c <= '9':
		return Digit
	case unicode.Is(cjkRanges, c):
		if isCjkPunctuation(c) {
			return Other
		}
		return Cjk
	case unicode.Is(latinRanges, c):
		return Latin
	default:
		return Other
	}
}

func isCjkPunctuation(c rune) bool {
	for _, tbl := range cjkPunctuationCategories {
		if unicode.Is(tbl, c) {
			return true
		}
	}
	return false
}

package graphemes

import (
	"unicode"
	"unicode/utf8"
)

// property is a bitmask of the grapheme-cluster-boundary properties a
// codepoint can carry, per https://unicode.org/reports/tr29/#Table_Grapheme_Cluster_Break_Property_Values.
// This is a hand-maintained subset of the property trie clipperhouse/uax29
// generates at build time (see its internal/gen package); a full Unicode
// data file-driven generator is out of scope here, so the ranges below are
// curated directly from the Unicode character database blocks the rules
// require.
type property uint16

const (
	_CR property = 1 << iota
	_LF
	_Control
	_Extend
	_ZWJ
	_SpacingMark
	_Prepend
	_L
	_V
	_T
	_LV
	_LVT
	_RegionalIndicator
	_ExtendedPictographic
)

// hangulLeading, hangulVowel, hangulTrailing are the canonical Unicode
// blocks for Hangul Jamo, used by GB6/GB7/GB8.
var hangulLeading = &unicode.RangeTable{R16: []unicode.Range16{{0x1100, 0x115F, 1}, {0xA960, 0xA97C, 1}}}
var hangulVowel = &unicode.RangeTable{R16: []unicode.Range16{{0x1160, 0x11A7, 1}, {0xD7B0, 0xD7C6, 1}}}
var hangulTrailing = &unicode.RangeTable{R16: []unicode.Range16{{0x11A8, 0x11FF, 1}, {0xD7CB, 0xD7FB, 1}}}
var hangulLV = &unicode.RangeTable{R16: []unicode.Range16{{0xAC00, 0xD7A3, 28}}}

// hangulLVT is intentionally empty: the 27 LVT codepoints in each 28-wide
// Hangul syllable block can't be expressed as a single strided Range16.
// Precomposed LVT syllables therefore carry no Hangul property: GB6 (L x
// LVT) and GB8 (LVT x T) are not applied, so such a syllable is split from
// a preceding L jamo and from a following T jamo. LV syllables are
// classified, so GB7 (LV x T) does apply.
var hangulLVT = &unicode.RangeTable{}

// prependRanges covers the Prepended_Concatenation_Mark set used by GB9b;
// these are a small, stable set of codepoints (Arabic/Syriac/Kharoshthi
// number signs, etc).
var prependRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0600, 0x0605, 1},
		{0x06DD, 0x06DD, 1},
		{0x070F, 0x070F, 1},
		{0x08E2, 0x08E2, 1},
	},
	R32: []unicode.Range32{
		{0x110BD, 0x110BD, 1},
		{0x110CD, 0x110CD, 1},
	},
}

// regionalIndicatorRange is U+1F1E6..U+1F1FF.
var regionalIndicatorRange = &unicode.RangeTable{R32: []unicode.Range32{{0x1F1E6, 0x1F1FF, 1}}}

// extendedPictographicRanges is an approximation of the Extended_Pictographic
// property: the major emoji blocks of the Unicode Standard. It is
// deliberately conservative (covering the common emoji ranges) since the
// full property list runs to hundreds of discontiguous codepoints.
var extendedPictographicRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x2600, 0x27BF, 1}, // Misc symbols, Dingbats
		{0x2190, 0x21FF, 1}, // Arrows (many have Extended_Pictographic)
		{0x2B00, 0x2BFF, 1}, // Misc symbols and arrows
	},
	R32: []unicode.Range32{
		{0x1F000, 0x1FAFF, 1}, // Mahjong through Symbols and Pictographs Extended-A
	},
}

func lookup(data []byte) (p property, width int) {
	r, w := utf8.DecodeRune(data)
	if w == 0 {
		return 0, 0
	}

	switch {
	case r == '\r':
		p |= _CR
	case r == '\n':
		p |= _LF
	}

	if unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r) {
		p |= _Control
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || r == 0x200C /* ZWNJ */ {
		p |= _Extend
	}
	if r == 0x200D {
		p |= _ZWJ
	}
	if unicode.Is(unicode.Mc, r) {
		p |= _SpacingMark
	}
	if unicode.Is(prependRanges, r) {
		p |= _Prepend
	}
	if unicode.Is(hangulLeading, r) {
		p |= _L
	}
	if unicode.Is(hangulVowel, r) {
		p |= _V
	}
	if unicode.Is(hangulTrailing, r) {
		p |= _T
	}
	if unicode.Is(hangulLV, r) {
		p |= _LV
	}
	if unicode.Is(hangulLVT, r) {
		p |= _LVT
	}
	if unicode.Is(regionalIndicatorRange, r) {
		p |= _RegionalIndicator
	}
	if unicode.Is(extendedPictographicRanges, r) {
		p |= _ExtendedPictographic
	}

	return p, w
}

package linebreak

import "github.com/sgryjp/cjkfmt/graphemes"

// defaultProhibitedStartLiteral and defaultProhibitedEndLiteral are the
// Japanese kinsoku shori grapheme sets from spec.md §4.3. They are kept as
// grapheme-cluster sets (not rune sets) per the design note in spec.md §9:
// composed sequences such as "‼", "⁇", "⁉" are themselves single grapheme
// clusters and must be matched as such, not decomposed into codepoints.
var defaultProhibitedStartLiteral = "" +
	")]｝〕〉》」』】〙〗〟'\"｠»" +
	"ヽヾーァィゥェォッャュョヮヵヶぁぃぅぇぉっゃゅょゎゕゖ" +
	smallAinuKatakana +
	"々〻" +
	"‐゠–〜" +
	"？!‼⁇⁈⁉" +
	"・、:;," +
	"。."

const defaultProhibitedEndLiteral = "([｛〔〈《「『【〘〖〝'\"｟«"

// smallAinuKatakana expands the "ㇰ-ㇿ" range from spec.md §4.3
// (U+31F0..U+31FF, Katakana Phonetic Extensions).
var smallAinuKatakana = func() string {
	s := ""
	for r := rune(0x31F0); r <= 0x31FF; r++ {
		s += string(r)
	}
	return s
}()

// graphemeSet is a set of grapheme clusters, used for the kinsoku
// prohibited-start and prohibited-end tables.
type graphemeSet map[string]struct{}

func newGraphemeSet(literal string) graphemeSet {
	set := make(graphemeSet)
	for _, g := range graphemes.Split(literal) {
		set[g] = struct{}{}
	}
	return set
}

func (s graphemeSet) has(g string) bool {
	_, ok := s[g]
	return ok
}

// DefaultProhibitedStart is the default set of grapheme clusters that may
// not begin a line.
func DefaultProhibitedStart() graphemeSet {
	return newGraphemeSet(defaultProhibitedStartLiteral)
}

// DefaultProhibitedEnd is the default set of grapheme clusters that may
// not end a line.
func DefaultProhibitedEnd() graphemeSet {
	return newGraphemeSet(defaultProhibitedEndLiteral)
}

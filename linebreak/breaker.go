package linebreak

import (
	"unicode/utf8"

	"github.com/sgryjp/cjkfmt/graphemes"
	"github.com/sgryjp/cjkfmt/internal/cjkerr"
	"github.com/sgryjp/cjkfmt/internal/eastasian"
	"github.com/sgryjp/cjkfmt/internal/linebreakclass"
)

// LineBreaker finds the next line-wrap decision for a single physical
// line, honoring a display-width budget (counted in East Asian columns),
// Japanese kinsoku shori rules, and UAX #14 word cohesion between Latin
// words. See spec.md §4.3 for the full algorithm description.
type LineBreaker struct {
	maxWidth        int
	ambiguous       AmbiguousWidth
	prohibitedStart graphemeSet
	prohibitedEnd   graphemeSet
}

// New builds a LineBreaker with the given maximum width (in East Asian
// columns) and options. It returns *ErrInvalidConfiguration if maxWidth is
// less than 2.
func New(maxWidth int, opts ...Option) (*LineBreaker, error) {
	if maxWidth < 2 {
		return nil, &ErrInvalidConfiguration{MaxWidth: maxWidth}
	}

	lb := &LineBreaker{
		maxWidth:        maxWidth,
		ambiguous:       Wide,
		prohibitedStart: DefaultProhibitedStart(),
		prohibitedEnd:   DefaultProhibitedEnd(),
	}
	for _, opt := range opts {
		opt(lb)
	}
	return lb, nil
}

// MaxWidth returns the configured width budget.
func (lb *LineBreaker) MaxWidth() int { return lb.maxWidth }

// AmbiguousWidth returns the configured Ambiguous-category policy.
func (lb *LineBreaker) AmbiguousWidth() AmbiguousWidth { return lb.ambiguous }

// Next walks line grapheme by grapheme and returns the next break
// decision. line must be a single physical line as produced by textio (it
// may carry a trailing terminator; it must not contain a terminator
// anywhere else).
func (lb *LineBreaker) Next(line string) BreakPoint {
	var seen []string
	var starts []int
	accWidth := 0

	iter := graphemes.FromString(line)
	for iter.Next() {
		g := iter.Text()
		i := iter.Start()

		if isTerminator(g) {
			return EndOfLine(i + len(g))
		}

		width := lb.graphemeWidth(g)
		if accWidth+width > lb.maxWidth {
			if adjustment, ok := lb.backtrack(seen, g); ok {
				breakOffset := i - adjustment
				if !isGraphemeBoundary(starts, breakOffset) {
					cjkerr.InvariantViolation("backtrack produced offset %d in %q, which is not a grapheme boundary", breakOffset, line)
				}
				return WrapPoint(i, adjustment)
			}
			// No legal break point behind this grapheme: tolerate the
			// overflow and keep scanning, per spec.md §4.3 step 3.
		}

		seen = append(seen, g)
		starts = append(starts, i)
		accWidth += width
	}

	return EndOfText(len(line))
}

// isGraphemeBoundary reports whether offset is one of the grapheme start
// positions already seen in this line, per spec.md §8 invariant 1: a
// WrapPoint must never cut a line inside a grapheme cluster.
func isGraphemeBoundary(starts []int, offset int) bool {
	for _, s := range starts {
		if s == offset {
			return true
		}
	}
	return false
}

func isTerminator(g string) bool {
	return g == "\r" || g == "\n" || g == "\r\n"
}

// graphemeWidth sums the East Asian display width of every codepoint in
// the grapheme cluster, per spec.md §4.3 step 2.
func (lb *LineBreaker) graphemeWidth(g string) int {
	width := 0
	for _, r := range g {
		width += eastasian.RuneWidth(r, lb.ambiguous)
	}
	return width
}

// backtrack implements spec.md §4.3's backtrack procedure: starting from
// the grapheme immediately before the overflowing one, walk left until a
// position is found where UAX #14 and the kinsoku prohibited sets all
// permit a break. It returns the number of bytes to subtract from the
// overflow position, and false if no legal break point exists.
func (lb *LineBreaker) backtrack(preceding []string, overflow string) (adjustment int, ok bool) {
	if len(preceding) == 0 {
		return 0, false
	}

	rewind := 0
	following := overflow
	for p := len(preceding) - 1; p >= 0; p-- {
		g := preceding[p]

		if !breakableBetween(g, following) {
			rewind += len(g)
			following = g
			continue
		}
		if lb.prohibitedEnd.has(g) {
			rewind += len(g)
			following = g
			continue
		}
		if lb.prohibitedStart.has(following) {
			rewind += len(g)
			following = g
			continue
		}

		return rewind, true
	}

	return 0, false
}

// breakableBetween applies the UAX #14 table from spec.md §4.3 to the
// last codepoint of g and the first codepoint of following.
func breakableBetween(g, following string) bool {
	p, _ := utf8.DecodeLastRuneInString(g)
	f, _ := utf8.DecodeRuneInString(following)
	return linebreakclass.Breakable(p, f)
}

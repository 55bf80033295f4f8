package spacing

import (
	"github.com/sgryjp/cjkfmt/internal/charclass"
	"github.com/sgryjp/cjkfmt/internal/cjkerr"
)

// SearchPossiblePositions scans text codepoint by codepoint and returns a
// strictly increasing sequence of byte offsets, each the start of the
// second character in a CJK<->Latin or CJK<->Digit transition whose
// spacing rule demands an edit, per spec.md §4.5.
//
// Require emits a candidate at the transition; Ignore never emits.
// Prohibit has no behavioral contract yet (spec.md §9): it panics rather
// than guess, so a caller must reject it during configuration validation
// instead of reaching this far.
func SearchPossiblePositions(cfg Config, text string) []int {
	var indices []int

	first := true
	var prevType charclass.Type
	last := -1

	for i, c := range text {
		currType := charclass.Of(c)
		if first {
			prevType = currType
			first = false
			continue
		}

		if shouldEmit(cfg, prevType, currType) {
			if i <= last {
				cjkerr.InvariantViolation("spacing offset %d is not strictly greater than previous offset %d", i, last)
			}
			indices = append(indices, i)
			last = i
		}

		prevType = currType
	}

	return indices
}

func shouldEmit(cfg Config, prev, curr charclass.Type) bool {
	rule, transitions := governingRule(cfg, prev, curr)
	if !transitions {
		return false
	}
	switch rule {
	case Require:
		return true
	case Prohibit:
		panic("spacing: Prohibit has no behavioral contract yet; reject it in configuration validation")
	default:
		return false
	}
}

// governingRule reports which Rule governs the (prev, curr) transition,
// and whether the pair is a CJK<->Latin/Digit boundary at all.
func governingRule(cfg Config, prev, curr charclass.Type) (rule Rule, applies bool) {
	switch {
	case isPair(prev, curr, charclass.Cjk, charclass.Digit):
		return cfg.Digits, true
	case isPair(prev, curr, charclass.Cjk, charclass.Latin):
		return cfg.Alphabets, true
	default:
		return Ignore, false
	}
}

func isPair(prev, curr, a, b charclass.Type) bool {
	return (prev == a && curr == b) || (prev == b && curr == a)
}

// Package spacing implements the CJK/Latin spacing diagnostic analyzer
// from spec.md §4.5: it scans text for boundaries between CJK
// ideographic/kana/hangul runs and ASCII Latin letters or digits that
// violate a configurable policy.
package spacing

import "fmt"

// Rule selects how a CJK/Latin or CJK/Digit boundary should be treated.
type Rule int

const (
	// Ignore means the analyzer does not care about spacing at this kind
	// of boundary.
	Ignore Rule = iota
	// Require means a space is expected at this kind of boundary; its
	// absence is reported.
	Require
	// Prohibit means a space must not appear at this kind of boundary.
	// Reserved: spec.md §9 notes this has no behavioral contract yet.
	Prohibit
)

func (r Rule) String() string {
	switch r {
	case Require:
		return "require"
	case Prohibit:
		return "prohibit"
	default:
		return "ignore"
	}
}

// Config configures the spacing analyzer, per spec.md §3.
type Config struct {
	// Alphabets governs CJK <-> Latin-letter boundaries.
	Alphabets Rule
	// Digits governs CJK <-> ASCII-digit boundaries.
	Digits Rule
	// PunctuationAsFullwidth is reserved; spec.md §3/§9 give it no
	// behavioral contract yet.
	PunctuationAsFullwidth bool
}

// Validate rejects configuration that has no behavioral contract yet,
// per spec.md §9. Drivers must call this before invoking
// SearchPossiblePositions.
func (c Config) Validate() error {
	if c.Alphabets == Prohibit {
		return fmt.Errorf("spacing: alphabets=prohibit is not yet implemented")
	}
	if c.Digits == Prohibit {
		return fmt.Errorf("spacing: digits=prohibit is not yet implemented")
	}
	return nil
}

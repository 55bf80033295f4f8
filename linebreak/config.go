package linebreak

import (
	"fmt"

	"github.com/sgryjp/cjkfmt/internal/eastasian"
)

// AmbiguousWidth re-exports internal/eastasian's Ambiguous policy, so
// callers of this package never need to import the internal package
// directly.
type AmbiguousWidth = eastasian.AmbiguousWidth

const (
	Narrow = eastasian.Narrow
	Wide   = eastasian.Wide
)

// Option configures a LineBreaker built with New.
type Option func(*LineBreaker)

// WithAmbiguousWidth overrides how codepoints in the Unicode Ambiguous
// East Asian Width category are measured. The default is Wide.
func WithAmbiguousWidth(a AmbiguousWidth) Option {
	return func(lb *LineBreaker) { lb.ambiguous = a }
}

// WithProhibitedStart replaces the default set of grapheme clusters that
// may not begin a line.
func WithProhibitedStart(graphemeClusters []string) Option {
	return func(lb *LineBreaker) {
		set := make(graphemeSet, len(graphemeClusters))
		for _, g := range graphemeClusters {
			set[g] = struct{}{}
		}
		lb.prohibitedStart = set
	}
}

// WithProhibitedEnd replaces the default set of grapheme clusters that may
// not end a line.
func WithProhibitedEnd(graphemeClusters []string) Option {
	return func(lb *LineBreaker) {
		set := make(graphemeSet, len(graphemeClusters))
		for _, g := range graphemeClusters {
			set[g] = struct{}{}
		}
		lb.prohibitedEnd = set
	}
}

// ErrInvalidConfiguration is returned by New when maxWidth is out of
// range, per spec.md §4.3's validation rule and §7's InvalidConfiguration
// error kind.
type ErrInvalidConfiguration struct {
	MaxWidth int
}

func (e *ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("linebreak: max_width out of range: %d (must be >= 2)", e.MaxWidth)
}

package textio

import "github.com/sgryjp/cjkfmt/internal/iterators"

// Iterator is a lazy sequence of physical lines, including their
// terminators. Iterate while Next() returns true; Text() returns the
// current line, Start()/End() its byte offsets in the original string.
type Iterator struct {
	*iterators.StringIterator
}

// FromString returns an Iterator over the physical lines of s.
func FromString(s string) *Iterator {
	iter := &Iterator{
		iterators.NewStringIterator(SplitFunc),
	}
	iter.SetText(s)
	return iter
}

// Split collects every physical line of s into a slice, terminators
// included.
func Split(s string) []string {
	var lines []string
	iter := FromString(s)
	for iter.Next() {
		lines = append(lines, iter.Text())
	}
	return lines
}

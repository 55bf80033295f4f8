package graphemes

import "github.com/sgryjp/cjkfmt/internal/iterators"

// Iterator is a lazy sequence of extended grapheme clusters over a
// string, with byte offsets. Iterate while Next() returns true, and
// access the current cluster via Text(), its start offset via Start(),
// and the offset just past it via End().
type Iterator struct {
	*iterators.StringIterator
}

// FromString returns an Iterator over the grapheme clusters of s.
func FromString(s string) *Iterator {
	iter := &Iterator{
		iterators.NewStringIterator(SplitFunc),
	}
	iter.SetText(s)
	return iter
}

// Split is a convenience function that collects every grapheme cluster of
// s into a slice. Prefer FromString for large inputs — this allocates the
// whole result up front.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	result := make([]string, 0, len(s))
	iter := FromString(s)
	for iter.Next() {
		result = append(result, iter.Text())
	}
	return result
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	n := 0
	iter := FromString(s)
	for iter.Next() {
		n++
	}
	return n
}

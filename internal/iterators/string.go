package iterators

import (
	"bufio"
	"unsafe"
)

// StringIterator walks a string token by token, using a bufio.SplitFunc to
// find token boundaries. It is only intended for use within this module's
// segmenter packages (graphemes, textio); it will do the wrong thing with a
// SplitFunc that skips bytes before or after a token.
type StringIterator struct {
	split bufio.SplitFunc
	data  string
	pos   int
	start int
	token string
}

// NewStringIterator creates a new StringIterator for the given SplitFunc.
// Call SetText before Next.
func NewStringIterator(split bufio.SplitFunc) *StringIterator {
	return &StringIterator{
		split: split,
	}
}

// SetText sets the text for the iterator to operate on, and resets all state.
func (iter *StringIterator) SetText(s string) {
	iter.data = s
	iter.pos = 0
	iter.start = 0
	iter.token = ""
}

// Split replaces the SplitFunc used by the iterator.
func (iter *StringIterator) Split(split bufio.SplitFunc) {
	iter.split = split
}

// Next advances the iterator to the next token. It returns false when there
// are no remaining tokens.
func (iter *StringIterator) Next() bool {
	if iter.pos == len(iter.data) {
		return false
	}
	if iter.pos > len(iter.data) {
		panic(errAdvanceTooFar)
	}

	iter.start = iter.pos

	b := stringToBytes(iter.data[iter.pos:])
	advance, token, err := iter.split(b, true)
	if err != nil {
		panic(err)
	}
	if advance <= 0 {
		panic(errAdvanceIllegal)
	}

	iter.pos += advance
	if iter.pos > len(iter.data) {
		panic(errAdvanceTooFar)
	}

	iter.token = bytesToString(token)

	return true
}

// Text returns the current token.
func (iter *StringIterator) Text() string {
	return iter.token
}

// Start returns the byte offset of the current token in the original string.
func (iter *StringIterator) Start() int {
	return iter.start
}

// End returns the byte offset of the first byte after the current token.
func (iter *StringIterator) End() int {
	return iter.pos
}

// Reset rewinds the iterator to the beginning of the string it already has.
func (iter *StringIterator) Reset() {
	iter.pos = 0
	iter.start = 0
	iter.token = ""
}

// stringToBytes converts a string to []byte without allocation. Safe as
// long as the result is never mutated and doesn't escape past the
// lifetime of s.
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesToString converts a []byte to a string without allocation. Safe as
// long as b is never mutated afterward.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

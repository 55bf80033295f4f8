// Package textio provides a lazy iterator over the physical lines of a
// string, preserving line terminators, per spec.md §4.1. It follows the
// bufio.SplitFunc idiom clipperhouse/uax29 uses for its segmenters
// (graphemes, words, sentences): a single function scans forward and
// reports how many bytes make up the next token.
package textio

import "bufio"

// SplitFunc is a bufio.SplitFunc that yields one physical line at a time,
// including its terminator. Recognized terminators, checked at each byte
// in this priority: CRLF (2 bytes), lone CR (1 byte), lone LF (1 byte).
// Terminator bytes are matched literally, never as part of a multi-byte
// rune -- a lead byte that isn't 0x0D or 0x0A never matches. After the
// last terminator, any unterminated trailing content is yielded once,
// without a terminator. Empty input yields no tokens.
var SplitFunc bufio.SplitFunc = splitFunc

func splitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i+2], nil
				}
				return i + 1, data[:i+1], nil
			}
			if !atEOF {
				// Might be the start of CRLF; ask for more data.
				return 0, nil, nil
			}
			return i + 1, data[:i+1], nil
		case '\n':
			return i + 1, data[:i+1], nil
		}
	}

	// No terminator found in the buffered data.
	if !atEOF {
		return 0, nil, nil
	}
	return len(data), data, nil
}

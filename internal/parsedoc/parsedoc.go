// Package parsedoc restricts the spacing analyzer to "inline prose"
// byte ranges of a structured document, per spec.md §4.5's "optional
// gating by document structure" and §6's file-format detection.
//
// Markdown is parsed with goldmark and walked the way
// fetch's internal/format/markdown.go walks a goldmark AST: code spans,
// fenced/indented code blocks, and raw HTML are excluded, the rest of
// the inline content is prose. JSON is scanned lexically for string
// literals, which are the only place spacing conventions apply.
package parsedoc

import (
	"encoding/json"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sgryjp/cjkfmt/internal/cjkerr"
)

// Range is a half-open [Start, End) byte range within a document's
// source bytes.
type Range struct {
	Start, End int
}

// Grammar selects how ProseRanges interprets a document's bytes.
type Grammar int

const (
	// PlainText treats the whole input as one prose range.
	PlainText Grammar = iota
	// Markdown restricts prose to goldmark inline text nodes.
	Markdown
	// JSON restricts prose to string literal contents.
	JSON
)

// GrammarForExtension maps a filename extension (including the leading
// dot, e.g. ".json") to a Grammar, per spec.md §6: ".json" engages the
// JSON scanner, ".md"/".markdown" engage the Markdown scanner, and any
// other extension - including the empty string, as for standard input -
// falls back to PlainText, scanning the whole input as prose.
func GrammarForExtension(ext string) Grammar {
	switch {
	case strings.EqualFold(ext, ".json"):
		return JSON
	case strings.EqualFold(ext, ".md"), strings.EqualFold(ext, ".markdown"):
		return Markdown
	default:
		return PlainText
	}
}

// ProseRanges returns the byte ranges of source that should be passed to
// the spacing analyzer. On a parse failure it returns a single range
// spanning the whole input and a *cjkerr.ParseError, per spec.md §7: the
// driver must fall back to whole-text analysis rather than abort.
func ProseRanges(g Grammar, source []byte) ([]Range, error) {
	switch g {
	case Markdown:
		return markdownProseRanges(source)
	case JSON:
		return jsonStringRanges(source)
	default:
		return []Range{{Start: 0, End: len(source)}}, nil
	}
}

func markdownProseRanges(source []byte) ([]Range, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var ranges []Range
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.CodeSpan, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.RawHTML, *ast.HTMLBlock, *ast.AutoLink:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			t := n.(*ast.Text)
			seg := t.Segment
			ranges = append(ranges, Range{Start: seg.Start, End: seg.Stop})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return []Range{{Start: 0, End: len(source)}}, &cjkerr.ParseError{Path: "", Err: err}
	}
	return ranges, nil
}

// jsonStringRanges decodes source to validate it is well-formed JSON,
// then lexically rescans for double-quoted string literals: the byte
// ranges of their raw source content between the surrounding quotes.
// Escape sequences inside a literal stay in the range as written; they are
// not decoded. Object keys are included; spec.md does not distinguish keys
// from values.
func jsonStringRanges(source []byte) ([]Range, error) {
	var discard any
	if err := json.Unmarshal(source, &discard); err != nil {
		return []Range{{Start: 0, End: len(source)}}, &cjkerr.ParseError{Path: "", Err: err}
	}

	var ranges []Range
	inString := false
	escaped := false
	start := 0
	for i := 0; i < len(source); i++ {
		c := source[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				ranges = append(ranges, Range{Start: start, End: i})
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			start = i + 1
		}
	}
	return ranges, nil
}

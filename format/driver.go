// Package format rewrites a document using the line breaker's wrap
// decisions, per spec.md §4.7.
package format

import (
	"strings"

	"github.com/sgryjp/cjkfmt/internal/cjkconfig"
	"github.com/sgryjp/cjkfmt/linebreak"
	"github.com/sgryjp/cjkfmt/textio"
)

// File rewrites content, inserting a newline at every wrap point the
// line breaker reports. The concatenation of the result with every
// inserted newline removed equals content byte-for-byte, per spec.md
// §8's line-preserving invariant.
func File(cfg cjkconfig.Config, content string) (string, error) {
	breaker, err := linebreak.New(cfg.MaxWidth, linebreak.WithAmbiguousWidth(cfg.AmbiguousWidth))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	iter := textio.FromString(content)
	for iter.Next() {
		writeWrappedLine(&out, breaker, iter.Text())
	}
	return out.String(), nil
}

func writeWrappedLine(out *strings.Builder, breaker *linebreak.LineBreaker, line string) {
	remaining := line
	for {
		bp := breaker.Next(remaining)
		if bp.Kind() != linebreak.KindWrapPoint {
			out.WriteString(remaining)
			return
		}
		before, after := remaining[:bp.BreakOffset()], remaining[bp.BreakOffset():]
		out.WriteString(before)
		out.WriteByte('\n')
		remaining = after
	}
}

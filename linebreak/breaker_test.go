package linebreak_test

import (
	"testing"

	"github.com/sgryjp/cjkfmt/linebreak"
)

func TestNewValidatesMaxWidth(t *testing.T) {
	t.Parallel()

	if _, err := linebreak.New(0); err == nil {
		t.Error("New(0) should fail")
	}
	if _, err := linebreak.New(1); err == nil {
		t.Error("New(1) should fail")
	}
	if _, err := linebreak.New(2); err != nil {
		t.Errorf("New(2) should succeed, got %v", err)
	}
}

// TestKinsokuBacktrack is scenario S1 from spec.md §8.
func TestKinsokuBacktrack(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(7)
	if err != nil {
		t.Fatal(err)
	}

	bp := lb.Next("あ「い」う")
	if bp.Kind() != linebreak.KindWrapPoint {
		t.Fatalf("expected WrapPoint, got %v", bp.Kind())
	}
	if bp.OverflowPos() != 9 || bp.Adjustment() != 6 {
		t.Errorf("got overflow_pos=%d adjustment=%d, want 9, 6", bp.OverflowPos(), bp.Adjustment())
	}
	if bp.BreakOffset() != 3 {
		t.Errorf("BreakOffset() = %d, want 3", bp.BreakOffset())
	}
}

// TestToleratedOverflow is scenario S2: repeated opening brackets with
// nothing else precede must not produce an illegal break.
func TestToleratedOverflow(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(2)
	if err != nil {
		t.Fatal(err)
	}

	// "「「" alone can never legally wrap: every candidate break point is
	// either immediately after an opening bracket (prohibited_end) or
	// immediately before one... in this case before the second "「",
	// which is not prohibited_start, but the preceding one *is*
	// prohibited_end, so there is no legal seam -- overflow is tolerated.
	bp := lb.Next("「「")
	if bp.Kind() == linebreak.KindWrapPoint {
		t.Errorf("expected tolerated overflow (EndOfText), got WrapPoint at %d", bp.OverflowPos())
	}
}

// TestWesternWordWrap is scenario S3.
func TestWesternWordWrap(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(6)
	if err != nil {
		t.Fatal(err)
	}

	bp := lb.Next("あfoo barい")
	if bp.Kind() != linebreak.KindWrapPoint {
		t.Fatalf("expected WrapPoint, got %v", bp.Kind())
	}
	if bp.OverflowPos() != 7 || bp.Adjustment() != 0 {
		t.Errorf("got overflow_pos=%d adjustment=%d, want 7, 0", bp.OverflowPos(), bp.Adjustment())
	}
}

// TestCRLFAndLF is scenario S4.
func TestCRLFAndLF(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(80)
	if err != nil {
		t.Fatal(err)
	}

	bp := lb.Next("foo\r\nbar")
	if bp.Kind() != linebreak.KindEndOfLine || bp.Pos() != 5 {
		t.Errorf("CRLF: got kind=%v pos=%d, want EndOfLine(5)", bp.Kind(), bp.Pos())
	}

	bp = lb.Next("foo\nbar")
	if bp.Kind() != linebreak.KindEndOfLine || bp.Pos() != 4 {
		t.Errorf("LF: got kind=%v pos=%d, want EndOfLine(4)", bp.Kind(), bp.Pos())
	}
}

func TestEndOfTextWithoutTerminator(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(80)
	if err != nil {
		t.Fatal(err)
	}
	bp := lb.Next("hello")
	if bp.Kind() != linebreak.KindEndOfText || bp.Pos() != 5 {
		t.Errorf("got kind=%v pos=%d, want EndOfText(5)", bp.Kind(), bp.Pos())
	}
}

func TestEmptyLine(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(80)
	if err != nil {
		t.Fatal(err)
	}
	bp := lb.Next("")
	if bp.Kind() != linebreak.KindEndOfText || bp.Pos() != 0 {
		t.Errorf("empty line: got kind=%v pos=%d, want EndOfText(0)", bp.Kind(), bp.Pos())
	}
}

func TestTerminatorOnlyLine(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(80)
	if err != nil {
		t.Fatal(err)
	}
	bp := lb.Next("\n")
	if bp.Kind() != linebreak.KindEndOfLine || bp.Pos() != 1 {
		t.Errorf("got kind=%v pos=%d, want EndOfLine(1)", bp.Kind(), bp.Pos())
	}
}

// TestVeryLargeWidthIsIdentity covers the round-trip property from
// spec.md §8: wrapping at a very large max_width never wraps.
func TestVeryLargeWidthIsIdentity(t *testing.T) {
	t.Parallel()

	lb, err := linebreak.New(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	bp := lb.Next("あ「い」う、とても長い日本語の文章。 and some English too.")
	if bp.Kind() == linebreak.KindWrapPoint {
		t.Errorf("expected no wrap at very large max_width, got WrapPoint at %d", bp.OverflowPos())
	}
}

package check_test

import (
	"testing"

	"github.com/sgryjp/cjkfmt/check"
	"github.com/sgryjp/cjkfmt/diag"
	"github.com/sgryjp/cjkfmt/internal/cjkconfig"
	"github.com/sgryjp/cjkfmt/internal/eastasian"
	"github.com/sgryjp/cjkfmt/internal/parsedoc"
	"github.com/sgryjp/cjkfmt/spacing"
)

// TestMultiLineFile is scenario S6 from spec.md §8: two over-long lines
// yield two W001 diagnostics.
func TestMultiLineFile(t *testing.T) {
	t.Parallel()

	cfg := cjkconfig.Config{MaxWidth: 7, AmbiguousWidth: eastasian.Wide}

	content := "あ「い」う\nfoo barbazqux\n"
	diagnostics, err := check.File(cfg, "doc.txt", parsedoc.PlainText, content)
	if err != nil {
		t.Fatal(err)
	}

	var w001 []diag.Diagnostic
	for _, d := range diagnostics {
		if d.Code == diag.CodeLineLength {
			w001 = append(w001, d)
		}
	}
	if len(w001) != 2 {
		t.Fatalf("got %d W001 diagnostics, want 2: %+v", len(w001), diagnostics)
	}
	if w001[0].Range.Start.Line != 0 || w001[1].Range.Start.Line != 1 {
		t.Errorf("W001 lines = %d, %d, want 0, 1", w001[0].Range.Start.Line, w001[1].Range.Start.Line)
	}
}

func TestDiagnosticsAreOrdered(t *testing.T) {
	t.Parallel()

	cfg := cjkconfig.Config{
		MaxWidth:       7,
		AmbiguousWidth: eastasian.Wide,
		Spacing:        spacing.Config{Alphabets: spacing.Require},
	}

	content := "あ「い」うa\nfoo barbazqux\n"
	diagnostics, err := check.File(cfg, "doc.txt", parsedoc.PlainText, content)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(diagnostics); i++ {
		if !diagnostics[i-1].Range.Start.Less(diagnostics[i].Range.Start) {
			t.Errorf("diagnostics not ordered: %+v then %+v", diagnostics[i-1], diagnostics[i])
		}
	}
}

func TestNoDiagnosticsOnEmptyInput(t *testing.T) {
	t.Parallel()

	cfg := cjkconfig.Config{MaxWidth: 80, AmbiguousWidth: eastasian.Wide}
	diagnostics, err := check.File(cfg, "", parsedoc.PlainText, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("got %d diagnostics for empty input, want 0", len(diagnostics))
	}
}

func TestRejectsInvalidSpacingConfig(t *testing.T) {
	t.Parallel()

	cfg := cjkconfig.Config{
		MaxWidth: 80,
		Spacing:  spacing.Config{Alphabets: spacing.Prohibit},
	}
	if _, err := check.File(cfg, "", parsedoc.PlainText, "hello"); err == nil {
		t.Error("expected an error for alphabets=prohibit")
	}
}

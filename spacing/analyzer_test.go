package spacing_test

import (
	"reflect"
	"testing"

	"github.com/sgryjp/cjkfmt/spacing"
)

// TestAlphabetsRequire is scenario S5 from spec.md §8.
func TestAlphabetsRequire(t *testing.T) {
	t.Parallel()

	cfg := spacing.Config{Alphabets: spacing.Require}

	got := spacing.SearchPossiblePositions(cfg, "漢a")
	want := []int{3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchPossiblePositions(%q) = %v, want %v", "漢a", got, want)
	}

	got = spacing.SearchPossiblePositions(cfg, "漢 a")
	if len(got) != 0 {
		t.Errorf("SearchPossiblePositions(%q) = %v, want empty", "漢 a", got)
	}
}

func TestDigitsRequire(t *testing.T) {
	t.Parallel()

	cfg := spacing.Config{Digits: spacing.Require}

	got := spacing.SearchPossiblePositions(cfg, "第1章")
	want := []int{3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchPossiblePositions(%q) = %v, want %v", "第1章", got, want)
	}
}

func TestIgnoreNeverEmits(t *testing.T) {
	t.Parallel()

	cfg := spacing.Config{Alphabets: spacing.Ignore, Digits: spacing.Ignore}

	got := spacing.SearchPossiblePositions(cfg, "漢a1章")
	if len(got) != 0 {
		t.Errorf("SearchPossiblePositions with Ignore = %v, want empty", got)
	}
}

func TestEmptyAndSingleRuneText(t *testing.T) {
	t.Parallel()

	cfg := spacing.Config{Alphabets: spacing.Require, Digits: spacing.Require}

	if got := spacing.SearchPossiblePositions(cfg, ""); len(got) != 0 {
		t.Errorf("empty text: got %v, want empty", got)
	}
	if got := spacing.SearchPossiblePositions(cfg, "漢"); len(got) != 0 {
		t.Errorf("single rune: got %v, want empty", got)
	}
}

func TestConfigValidateRejectsProhibit(t *testing.T) {
	t.Parallel()

	if err := (spacing.Config{Alphabets: spacing.Prohibit}).Validate(); err == nil {
		t.Error("Validate() with alphabets=prohibit should fail")
	}
	if err := (spacing.Config{Digits: spacing.Prohibit}).Validate(); err == nil {
		t.Error("Validate() with digits=prohibit should fail")
	}
	if err := (spacing.Config{Alphabets: spacing.Require}).Validate(); err != nil {
		t.Errorf("Validate() with alphabets=require should succeed, got %v", err)
	}
}

func TestProhibitPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("SearchPossiblePositions with an unvalidated Prohibit rule should panic")
		}
	}()
	spacing.SearchPossiblePositions(spacing.Config{Alphabets: spacing.Prohibit}, "漢a")
}

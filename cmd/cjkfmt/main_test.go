package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgryjp/cjkfmt/internal/cjkconfig"
	"github.com/sgryjp/cjkfmt/internal/eastasian"
	"github.com/sgryjp/cjkfmt/internal/render"
)

func TestInputFilesReadsNamedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	contents := inputFiles([]string{path})
	if len(contents) != 1 || contents[0].text != "hello" || contents[0].name != path {
		t.Errorf("inputFiles() = %+v", contents)
	}
}

func TestRunFormatWritesOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := cjkconfig.Config{MaxWidth: 80, AmbiguousWidth: eastasian.Wide}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runFormat(&buf, cfg, []string{path}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("runFormat output = %q, want %q", buf.String(), "hello\n")
	}
}

func TestRunCheckWritesDiagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := cjkconfig.Config{MaxWidth: 2, AmbiguousWidth: eastasian.Wide}

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("foo bar\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCheck(&buf, cfg, render.ColorNever, []string{path}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("expected at least one diagnostic line")
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := displayName(""); got != "<stdin>" {
		t.Errorf("displayName(\"\") = %q, want <stdin>", got)
	}
	if got := displayName("a.txt"); got != "a.txt" {
		t.Errorf("displayName(a.txt) = %q, want a.txt", got)
	}
}

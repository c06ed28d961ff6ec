package project

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/crishoj/formkit/internal/defs"
)

// writeRC writes an rc file into a fresh temp dir and returns the dir.
func writeRC(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, defs.RCFileYAML)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rc file: %v", err)
	}
	return dir
}

func TestLoadRCMissingFile(t *testing.T) {
	t.Parallel()

	rc, err := LoadRC(t.TempDir())
	if err != nil {
		t.Fatalf("LoadRC() error: %v", err)
	}
	if rc.Export.Dir != "" || rc.Export.Lang != "" {
		t.Errorf("missing rc file should yield zero defaults, got %+v", rc)
	}
}

func TestLoadRCValid(t *testing.T) {
	t.Parallel()

	dir := writeRC(t, "export:\n  dir: src/kit\n  lang: ts\n")

	rc, err := LoadRC(dir)
	if err != nil {
		t.Fatalf("LoadRC() error: %v", err)
	}
	if rc.Export.Dir != "src/kit" {
		t.Errorf("Export.Dir: got %q, want %q", rc.Export.Dir, "src/kit")
	}
	if rc.Export.Lang != defs.LangTS {
		t.Errorf("Export.Lang: got %q, want %q", rc.Export.Lang, defs.LangTS)
	}
}

func TestLoadRCMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := writeRC(t, "export: [unclosed\n")

	_, err := LoadRC(dir)
	if !errors.Is(err, ErrInvalidRC) {
		t.Errorf("LoadRC() error = %v, want ErrInvalidRC", err)
	}
}

func TestLoadRCInvalidLang(t *testing.T) {
	t.Parallel()

	dir := writeRC(t, "export:\n  lang: coffee\n")

	_, err := LoadRC(dir)
	if !errors.Is(err, ErrInvalidRCLang) {
		t.Errorf("LoadRC() error = %v, want ErrInvalidRCLang", err)
	}
}

func TestLoadRCOrDefaultFallsBack(t *testing.T) {
	t.Parallel()

	dir := writeRC(t, "export: [unclosed\n")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rc := LoadRCOrDefault(dir, logger)
	if rc == nil {
		t.Fatal("LoadRCOrDefault() returned nil")
	}
	if rc.Export.Dir != "" || rc.Export.Lang != "" {
		t.Errorf("fallback rc should be zero, got %+v", rc)
	}
}

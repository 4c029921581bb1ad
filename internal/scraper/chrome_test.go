package scraper

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveChromePath_ExplicitMissing(t *testing.T) {
	_, err := resolveChromePath(filepath.Join(t.TempDir(), "chrome"))
	if !errors.Is(err, ErrChromeNotFound) {
		t.Errorf("expected ErrChromeNotFound, got %v", err)
	}
}

func TestFindExecutable_OnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell-script executables only")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "chromium")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if got := findExecutable([]string{"google-chrome", "chromium"}); got != bin {
		t.Errorf("findExecutable() = %q, want %q", got, bin)
	}
	if got := findExecutable([]string{"google-chrome"}); got != "" {
		t.Errorf("findExecutable() = %q, want empty", got)
	}

	path, err := resolveChromePath("")
	if err != nil || path != bin {
		t.Errorf("resolveChromePath() = %q, %v", path, err)
	}
}

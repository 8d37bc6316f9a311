package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golf-lang/golf/internal/value"
)

func TestLoadPreludeScalarsAndLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prelude.yaml")
	doc := "greeting: hello\ncount: 3\nletters:\n  - a\n  - b\n  - c\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPrelude(path)
	if err != nil {
		t.Fatalf("LoadPrelude: %v", err)
	}

	if got, want := value.ToGS(p["greeting"]), "hello"; got != want {
		t.Errorf("greeting = %q, want %q", got, want)
	}
	if got, want := value.ToGS(p["count"]), "3"; got != want {
		t.Errorf("count = %q, want %q", got, want)
	}
	letters, ok := p["letters"].(*value.Arr)
	if !ok || len(letters.Items) != 3 {
		t.Fatalf("letters = %#v, want 3-element Arr", p["letters"])
	}
}

func TestLoadPreludeMissingFile(t *testing.T) {
	if _, err := LoadPrelude(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing prelude file")
	}
}

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFmt_Run_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yml")
	if err := os.WriteFile(path, []byte("a: 1\nb: [1, 2]\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c := &Fmt{Format: "json", Source: path}
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFmt_Run_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": 1, "b": [1, 2]}`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c := &Fmt{Format: "yaml", Source: path}
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFmt_Run_MissingSource_Errors(t *testing.T) {
	c := &Fmt{Format: "json", Source: filepath.Join(t.TempDir(), "does-not-exist.yml")}
	if err := c.Run(context.Background()); err == nil {
		t.Fatalf("expected an error for a missing source file")
	}
}

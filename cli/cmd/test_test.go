package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestFindFixtures_MatchesTestGlobOnly(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "test_a.yml", "cases: {}\n")
	writeFixture(t, dir, "other.yml", "cases: {}\n")

	paths, err := findFixtures(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(paths) != 1 || filepath.Base(paths[0]) != "test_a.yml" {
		t.Errorf("expected only test_a.yml, got %v", paths)
	}
}

func TestCommand_Run_AllCasesPass(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "test_ok.yml", `
cases:
  addition:
    code: ['+', 1, 2]
    expect: 3
`)

	c := &Test{Dir: dir}
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("expected all cases to pass, got %v", err)
	}
}

func TestCommand_Run_FailingCaseReturnsExitError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "test_bad.yml", `
cases:
  addition:
    code: ['+', 1, 2]
    expect: 99
`)

	c := &Test{Dir: dir}
	err := c.Run(context.Background())

	if _, ok := err.(exitError); !ok {
		t.Fatalf("expected an exitError, got %v (%T)", err, err)
	}
}

func TestCommand_Run_NoFixtures_Errors(t *testing.T) {
	c := &Test{Dir: t.TempDir()}
	if err := c.Run(context.Background()); err == nil {
		t.Fatalf("expected an error when no fixtures are found")
	}
}

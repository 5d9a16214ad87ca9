package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/ardnew/jspr/lang"
)

func TestRootEnvironment_BindsKernelAndHost(t *testing.T) {
	env := rootEnvironment()

	for _, name := range []string{"+", "do", "print", "time", "os"} {
		if _, ok := env.Lookup(name); !ok {
			t.Errorf("expected %q to be bound", name)
		}
	}
}

func TestLoadSources_FallsBackToStdinReader(t *testing.T) {
	// With no sources registered in ctx, loadSources reads os.Stdin via
	// docloader; we only assert it doesn't short-circuit before reaching
	// that path by checking sourceFilesFrom returns nil for a bare context.
	if sourceFilesFrom(context.Background()) != nil {
		t.Errorf("expected a bare context to carry no source files")
	}
}

func TestAsError_FindsLangErrorRejectsPlainError(t *testing.T) {
	base := lang.Raise("env-name-error", "x")
	plain := errors.New("outer")

	var jerr *lang.Error
	if asError(base, &jerr) {
		if jerr.Kind != "env-name-error" {
			t.Errorf("expected kind env-name-error, got %q", jerr.Kind)
		}
	} else {
		t.Errorf("expected asError to find the *lang.Error directly")
	}

	jerr = nil
	if asError(plain, &jerr) {
		t.Errorf("expected asError to report false for a plain error")
	}
}

func TestExitError_ErrorMessage(t *testing.T) {
	err := exitError{code: 1}
	if err.Error() != "exit status 1" {
		t.Errorf("expected \"exit status 1\", got %q", err.Error())
	}
}

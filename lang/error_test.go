package lang

import (
	"errors"
	"testing"
)

func TestRaise_BuildsSequencePayloadAndKind(t *testing.T) {
	err := Raise("env-name-error", "x")

	jerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}

	if jerr.Kind != "env-name-error" {
		t.Errorf("expected kind %q, got %q", "env-name-error", jerr.Kind)
	}

	seq, ok := jerr.Raised().(*Sequence)
	if !ok || seq.Len() != 2 || seq.Items[0] != "env-name-error" || seq.Items[1] != "x" {
		t.Errorf("expected payload [env-name-error, x], got %#v", jerr.Raised())
	}
}

func TestError_Error_IncludesCauseWhenWrapped(t *testing.T) {
	base := errors.New("boom")
	err := Raise("go-error").(*Error).Wrap(base)

	if err.Error() != "go-error: boom" {
		t.Errorf("expected \"go-error: boom\", got %q", err.Error())
	}
}

func TestError_Unwrap_ExposesCause(t *testing.T) {
	base := errors.New("boom")
	err := Raise("go-error").(*Error).Wrap(base)

	if !errors.Is(err, base) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}
}

func TestError_With_ReturnsDistinctCopy(t *testing.T) {
	base := Raise("kind").(*Error)
	withOne := base.With()

	if withOne == base {
		t.Errorf("expected With to return a distinct copy")
	}
}

func TestWrapError_CarriesNoPayload(t *testing.T) {
	base := errors.New("io failure")
	err := WrapError(base)

	if err.Kind != "go-error" {
		t.Errorf("expected kind go-error, got %q", err.Kind)
	}

	if err.Raised() != nil {
		t.Errorf("expected nil payload, got %#v", err.Raised())
	}

	if !errors.Is(err, base) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}
}

package lang

import "testing"

func TestQuote_ReturnsArgumentUnevaluated(t *testing.T) {
	env := NewEnvironment()
	Register(env)

	raw := NewSequence("+", int64(1), int64(2))

	result, err := Eval(NewSequence("quote", raw), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := result.(*Sequence)
	if !ok || seq.Len() != 3 || seq.Items[0] != "+" {
		t.Errorf("expected the raw sequence unevaluated, got %#v", result)
	}
}

func TestQuasiquote_WalksStructureAndEvaluatesUnquote(t *testing.T) {
	env := NewEnvironment()
	Register(env)
	env.Define("x", int64(5))

	// `(a, (unquote x), b)
	tmpl := NewSequence("a", NewSequence("unquote", ".x"), "b")

	result, err := Quasiquote(&Evaluator{}, tmpl, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := result.(*Sequence)
	if !ok || seq.Len() != 3 {
		t.Fatalf("expected a 3-element sequence, got %#v", result)
	}

	if seq.Items[0] != "a" || seq.Items[1] != int64(5) || seq.Items[2] != "b" {
		t.Errorf("expected [a, 5, b], got %#v", seq.Items)
	}
}

func TestQuasiquote_MappingUnquoteShape(t *testing.T) {
	env := NewEnvironment()
	Register(env)
	env.Define("x", int64(9))

	unq := NewMapping()
	unq.Set("unquote", ".x")

	tmpl := NewSequence(unq)

	result, err := Quasiquote(&Evaluator{}, tmpl, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != int64(9) {
		t.Errorf("expected 9, got %v", result)
	}
}

func TestInterpolate_SubstitutesMarker(t *testing.T) {
	env := NewEnvironment()
	env.Define("name", "world")

	result, err := interpolate("hello #{name}!", env, &Evaluator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "hello world!"
	if result != want {
		t.Errorf("expected %q, got %q", want, result)
	}
}

func TestInterpolate_UnescapesLiteralHash(t *testing.T) {
	env := NewEnvironment()

	result, err := interpolate("literal `#not-a-marker", env, &Evaluator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "literal #not-a-marker"
	if result != want {
		t.Errorf("expected %q, got %q", want, result)
	}
}

func TestInterpolate_Unterminated_Raises(t *testing.T) {
	env := NewEnvironment()

	_, err := interpolate("hi #{oops", env, &Evaluator{})

	jerr, ok := err.(*Error)
	if !ok || jerr.Kind != "unterminated-string-interp" {
		t.Errorf("expected unterminated-string-interp, got %v", err)
	}
}

package lang

import "testing"

func TestIota_SingleArg_ProducesBoundedRange(t *testing.T) {
	result, err := evalDoc(t, NewSequence("iota", int64(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := result.(*Sequence)
	if !ok || seq.Len() != 5 {
		t.Fatalf("expected a 5-element sequence, got %#v", result)
	}

	for i, want := 0, int64(0); i < seq.Len(); i, want = i+1, want+1 {
		if seq.Items[i] != want {
			t.Errorf("index %d: expected %d, got %v", i, want, seq.Items[i])
		}
	}
}

func TestIota_TwoArgs_ProducesFromToRange(t *testing.T) {
	result, err := evalDoc(t, NewSequence("iota", int64(2), int64(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := result.(*Sequence)
	if !ok || seq.Len() != 3 || seq.Items[0] != int64(2) || seq.Items[2] != int64(4) {
		t.Errorf("expected [2, 3, 4], got %#v", result)
	}
}

func TestIota_NoArgs_ProducesUnboundedIterator(t *testing.T) {
	result, err := evalDoc(t, NewSequence("iota"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	it, ok := result.(*Iterator)
	if !ok {
		t.Fatalf("expected an *Iterator, got %#v", result)
	}

	for i := int64(0); i < 3; i++ {
		v, ok := it.Next()
		if !ok || v != i {
			t.Errorf("expected %d, got (%v, %v)", i, v, ok)
		}
	}
}

func incLambda() *Sequence {
	return NewSequence("lambda", NewSequence("x"), NewSequence("+", ".x", int64(1)))
}

func TestIterMapTake_LazilyProjectsAndTruncates(t *testing.T) {
	doc := NewSequence("iter.take", int64(3),
		NewSequence("iter.map", NewSequence("iota", int64(5)), incLambda()))

	result, err := evalDoc(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := result.(*Sequence)
	if !ok || seq.Len() != 3 {
		t.Fatalf("expected a 3-element sequence, got %#v", result)
	}

	want := []Value{int64(1), int64(2), int64(3)}
	for i, w := range want {
		if seq.Items[i] != w {
			t.Errorf("index %d: expected %v, got %v", i, w, seq.Items[i])
		}
	}
}

func TestIterTake_UnboundedIota(t *testing.T) {
	doc := NewSequence("iter.take", int64(4), NewSequence("iota"))

	result, err := evalDoc(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := result.(*Sequence)
	if !ok || seq.Len() != 4 {
		t.Fatalf("expected a 4-element sequence, got %#v", result)
	}
}

func TestIterReduce_SumsWithCallerEnvironment(t *testing.T) {
	sumLambda := NewSequence("lambda", NewSequence("acc", "x"), NewSequence("+", ".acc", ".x"))

	doc := NewSequence("iter.reduce", NewSequence("iota", int64(4)), int64(0), sumLambda)

	result, err := evalDoc(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != int64(6) {
		t.Errorf("expected 6 (0+1+2+3), got %v", result)
	}
}

func TestIterReduce_ClosureCapturesOuterBinding(t *testing.T) {
	env := NewEnvironment()
	Register(env)
	env.Define("bonus", int64(10))

	addBonus := NewSequence("lambda", NewSequence("acc", "x"), NewSequence("+", ".acc", NewSequence("+", ".x", ".bonus")))

	doc := NewSequence("iter.reduce", NewSequence("iota", int64(2)), int64(0), addBonus)

	result, err := Eval(doc, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (0+bonus) + (1+bonus) folded in: 0 -> 0+(0+10)=10; 10 -> 10+(1+10)=21
	if result != int64(21) {
		t.Errorf("expected 21, got %v", result)
	}
}

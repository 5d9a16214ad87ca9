package lang

import "testing"

func TestNormalizeKey_PlainKey_Unchanged(t *testing.T) {
	key, val, err := NormalizeKey("foo", int64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != "foo" {
		t.Errorf("expected key %q, got %q", "foo", key)
	}

	if val != int64(1) {
		t.Errorf("expected value 1, got %v", val)
	}
}

func TestNormalizeKey_QuoteSuffix_WrapsInQuoteForm(t *testing.T) {
	key, val, err := NormalizeKey("a'", int64(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != "a" {
		t.Errorf("expected key %q, got %q", "a", key)
	}

	seq, ok := val.(*Sequence)
	if !ok || seq.Len() != 2 || seq.Items[0] != "quote" || seq.Items[1] != int64(2) {
		t.Errorf("expected ['quote', 2], got %#v", val)
	}
}

func TestNormalizeKey_ColonSuffix_WrapsNestedMapping(t *testing.T) {
	key, val, err := NormalizeKey("a:b", int64(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != "a" {
		t.Errorf("expected head key %q, got %q", "a", key)
	}

	wrapped, ok := val.(*Mapping)
	if !ok {
		t.Fatalf("expected *Mapping, got %#v", val)
	}

	v, ok := wrapped.Get("b")
	if !ok || v != int64(3) {
		t.Errorf("expected {b: 3}, got %#v", wrapped)
	}
}

func TestNormalizeKey_ColonChain_RecursivelyNormalizes(t *testing.T) {
	key, val, err := NormalizeKey("a:b'", int64(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != "a" {
		t.Errorf("expected head key %q, got %q", "a", key)
	}

	wrapped, ok := val.(*Mapping)
	if !ok {
		t.Fatalf("expected *Mapping, got %#v", val)
	}

	inner, ok := wrapped.Get("b")
	if !ok {
		t.Fatalf("expected nested key %q", "b")
	}

	seq, ok := inner.(*Sequence)
	if !ok || seq.Len() != 2 || seq.Items[0] != "quote" || seq.Items[1] != int64(4) {
		t.Errorf("expected ['quote', 4], got %#v", inner)
	}
}

func TestNormalizeKey_InvalidSuffix_Raises(t *testing.T) {
	_, _, err := NormalizeKey("a-", int64(1))
	if err == nil {
		t.Fatalf("expected error for invalid key suffix")
	}

	jerr, ok := err.(*Error)
	if !ok || jerr.Kind != "invalid-key-suffix" {
		t.Errorf("expected invalid-key-suffix error, got %v", err)
	}
}

func TestNormalizeKey_IsIdempotent(t *testing.T) {
	k1, v1, err := NormalizeKey("a'", int64(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	k2, v2, err := NormalizeKey(k1, v1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if k1 != k2 {
		t.Errorf("expected idempotent key, got %q then %q", k1, k2)
	}

	s1, ok1 := v1.(*Sequence)
	s2, ok2 := v2.(*Sequence)

	if !ok1 || !ok2 || s1.Len() != s2.Len() || s1.Items[0] != s2.Items[0] {
		t.Errorf("expected idempotent value, got %#v then %#v", v1, v2)
	}
}

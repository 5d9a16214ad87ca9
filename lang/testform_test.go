package lang

import "testing"

func testCall(pairs ...*Mapping) *Sequence {
	items := make([]Value, len(pairs))
	for i, p := range pairs {
		items[i] = p
	}

	return NewSequence(items...)
}

func TestTestForm_SingleComparison(t *testing.T) {
	call := testCall(kvMap("test", int64(5)), kvMap("gt", int64(3)))

	result, err := evalDoc(t, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestTestForm_ChainFoldsLHS(t *testing.T) {
	// 1 lt 2 eq true
	call := testCall(kvMap("test", int64(1)), kvMap("lt", int64(2)), kvMap("eq", true))

	result, err := evalDoc(t, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestTestForm_AndOnFalse_Raises(t *testing.T) {
	call := testCall(kvMap("test", false), kvMap("and", int64(1)))

	_, err := evalDoc(t, call)

	jerr, ok := err.(*Error)
	if !ok || jerr.Kind != "invalid-test-and-condition" {
		t.Errorf("expected invalid-test-and-condition, got %v", err)
	}
}

func TestTestForm_OrShortCircuitsOnTrue(t *testing.T) {
	call := testCall(kvMap("test", true), kvMap("or", int64(1)))

	result, err := evalDoc(t, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestTestForm_AliasSpellings(t *testing.T) {
	call := testCall(kvMap("test", int64(5)), kvMap("greater-than", int64(3)))

	result, err := evalDoc(t, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestTestForm_InMembership(t *testing.T) {
	hay := NewSequence("quote", NewSequence(int64(1), int64(2), int64(3)))

	call := testCall(kvMap("test", int64(2)), kvMap("in", hay))

	result, err := evalDoc(t, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != true {
		t.Errorf("expected true, got %v", result)
	}
}

func TestTestForm_FinalValueNotBool_Raises(t *testing.T) {
	call := testCall(kvMap("test", int64(5)))

	_, err := evalDoc(t, call)

	jerr, ok := err.(*Error)
	if !ok || jerr.Kind != "invalid-test-value" {
		t.Errorf("expected invalid-test-value, got %v", err)
	}
}

func TestTestForm_UnknownOperator_Raises(t *testing.T) {
	call := testCall(kvMap("test", int64(5)), kvMap("bogus", int64(3)))

	_, err := evalDoc(t, call)

	jerr, ok := err.(*Error)
	if !ok || jerr.Kind != "invalid-test-oper" {
		t.Errorf("expected invalid-test-oper, got %v", err)
	}
}

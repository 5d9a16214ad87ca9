package lang

import (
	"math"
	"testing"
)

func TestArithmetic_PositionalCalls(t *testing.T) {
	tests := []struct {
		name string
		expr *Sequence
		want Value
	}{
		{"add ints", NewSequence("+", int64(3), int64(4)), int64(7)},
		{"add floats promotes", NewSequence("+", int64(1), 2.5), 3.5},
		{"add strings concatenates", NewSequence("+", "foo", "bar"), "foobar"},
		{"sub", NewSequence("-", int64(10), int64(3)), int64(7)},
		{"mul", NewSequence("*", int64(6), int64(7)), int64(42)},
		{"div always float", NewSequence("/", int64(7), int64(2)), 3.5},
		{"floordiv ints", NewSequence("//", int64(7), int64(2)), int64(3)},
		{"floordiv negative rounds toward -inf", NewSequence("//", int64(-7), int64(2)), int64(-4)},
		{"eq true", NewSequence("eq", int64(2), int64(2)), true},
		{"eq false", NewSequence("eq", int64(2), int64(3)), false},
		{"neq", NewSequence("neq", int64(2), int64(3)), true},
		{"lt", NewSequence("lt", int64(1), int64(2)), true},
		{"gt", NewSequence("gt", int64(2), int64(1)), true},
		{"gte equal", NewSequence("gte", int64(2), int64(2)), true},
		{"lte less", NewSequence("lte", int64(1), int64(2)), true},
		{"same", NewSequence("same", int64(2), int64(2)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evalDoc(t, tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != tt.want {
				t.Errorf("got %v, want %v", result, tt.want)
			}
		})
	}
}

func kvMap(key string, v Value) *Mapping {
	m := NewMapping()
	m.Set(key, v)

	return m
}

func TestArithmetic_KeywordCallUsesPerOperatorKeyword(t *testing.T) {
	addCall := NewSequence(kvMap("add", int64(3)), kvMap("and", int64(4)))

	result, err := evalDoc(t, addCall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != int64(7) {
		t.Errorf("expected 7, got %v", result)
	}

	subCall := NewSequence(kvMap("sub", int64(10)), kvMap("minus", int64(3)))

	result, err = evalDoc(t, subCall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != int64(7) {
		t.Errorf("expected 7, got %v", result)
	}

	mulCall := NewSequence(kvMap("mul", int64(6)), kvMap("by", int64(7)))

	result, err = evalDoc(t, mulCall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != int64(42) {
		t.Errorf("expected 42, got %v", result)
	}
}

func TestArithmetic_FloatDivisionByZero_YieldsInf(t *testing.T) {
	result, err := evalDoc(t, NewSequence("/", int64(1), int64(0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, ok := result.(float64)
	if !ok || !math.IsInf(f, 1) {
		t.Errorf("expected +Inf, got %v", result)
	}
}

package docloader

import (
	"strings"
	"testing"

	"github.com/ardnew/jspr/lang"
)

func TestLoad_JSON_PreservesKeyOrderAndNumberKinds(t *testing.T) {
	doc, err := Load([]byte(`{"b": 1, "a": 2.5, "c": [1, "x", true, null]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := doc.(*lang.Mapping)
	if !ok {
		t.Fatalf("expected *lang.Mapping, got %T", doc)
	}

	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("expected insertion order [b, a, c], got %v", keys)
	}

	bv, _ := m.Get("b")
	if bv != int64(1) {
		t.Errorf("expected integer-literal 1 to decode as int64, got %#v", bv)
	}

	av, _ := m.Get("a")
	if av != 2.5 {
		t.Errorf("expected fractional 2.5 to decode as float64, got %#v", av)
	}

	cv, ok := m.Get("c")
	if !ok {
		t.Fatalf("expected key \"c\"")
	}

	seq, ok := cv.(*lang.Sequence)
	if !ok || seq.Len() != 4 {
		t.Fatalf("expected a 4-element sequence, got %#v", cv)
	}

	if seq.Items[0] != int64(1) || seq.Items[1] != "x" || seq.Items[2] != true || seq.Items[3] != nil {
		t.Errorf("expected [1, x, true, null], got %#v", seq.Items)
	}
}

func TestLoad_JSON_Array(t *testing.T) {
	doc, err := Load([]byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq, ok := doc.(*lang.Sequence)
	if !ok || seq.Len() != 3 {
		t.Fatalf("expected a 3-element sequence, got %#v", doc)
	}
}

func TestLoad_YAML_PreservesKeyOrder(t *testing.T) {
	input := "b: 1\na: 2\nc:\n  - x\n  - y\n"

	doc, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := doc.(*lang.Mapping)
	if !ok {
		t.Fatalf("expected *lang.Mapping, got %T", doc)
	}

	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
		t.Errorf("expected insertion order [b, a, c], got %v", keys)
	}

	cv, _ := m.Get("c")

	seq, ok := cv.(*lang.Sequence)
	if !ok || seq.Len() != 2 || seq.Items[0] != "x" || seq.Items[1] != "y" {
		t.Errorf("expected [x, y], got %#v", cv)
	}
}

func TestLoad_YAML_ScalarKinds(t *testing.T) {
	input := "i: 1\nf: 1.5\nb: true\nn: null\ns: hi\n"

	doc, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := doc.(*lang.Mapping)

	iv, _ := m.Get("i")
	if iv != int64(1) {
		t.Errorf("expected int64(1), got %#v", iv)
	}

	fv, _ := m.Get("f")
	if fv != 1.5 {
		t.Errorf("expected 1.5, got %#v", fv)
	}

	bv, _ := m.Get("b")
	if bv != true {
		t.Errorf("expected true, got %#v", bv)
	}

	nv, ok := m.Get("n")
	if !ok || nv != nil {
		t.Errorf("expected nil, got %#v", nv)
	}

	sv, _ := m.Get("s")
	if sv != "hi" {
		t.Errorf("expected \"hi\", got %#v", sv)
	}
}

func TestLoadReader_DelegatesToLoad(t *testing.T) {
	doc, err := LoadReader(strings.NewReader(`{"x": 1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := doc.(*lang.Mapping)
	if !ok {
		t.Fatalf("expected *lang.Mapping, got %T", doc)
	}

	v, _ := m.Get("x")
	if v != int64(1) {
		t.Errorf("expected 1, got %#v", v)
	}
}

func TestLooksLikeJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"object", `{"a": 1}`, true},
		{"array", `[1, 2]`, true},
		{"leading whitespace object", "  \n{\"a\":1}", true},
		{"yaml mapping", "a: 1\n", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeJSON([]byte(tt.in)); got != tt.want {
				t.Errorf("looksLikeJSON(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

package lang

import "strings"

// Quasiquote structurally walks v: scalars pass through unchanged; a
// sequence shaped `['unquote', y]` or `[{unquote: y}]` evaluates y in env
// and returns its value; any other sequence or mapping is walked
// recursively, element by element / value by value.
func Quasiquote(ev *Evaluator, v Value, env *Environment) (Value, error) {
	switch t := v.(type) {
	case *Sequence:
		if unq, ok := unquoteTarget(t); ok {
			return ev.Eval(unq, env)
		}

		out := make([]Value, len(t.Items))

		for i, it := range t.Items {
			r, err := Quasiquote(ev, it, env)
			if err != nil {
				return nil, err
			}

			out[i] = r
		}

		return NewSequence(out...), nil

	case *Mapping:
		out := NewMapping()

		for _, k := range t.Keys() {
			v0, _ := t.Get(k)

			rv, err := Quasiquote(ev, v0, env)
			if err != nil {
				return nil, err
			}

			out.Set(k, rv)
		}

		return out, nil

	default:
		return v, nil
	}
}

// unquoteTarget detects the two accepted unquote shapes: a two-element
// sequence `['unquote', y]`, or a one-element sequence wrapping a
// single-entry mapping `[{unquote: y}]`.
func unquoteTarget(seq *Sequence) (Value, bool) {
	if seq.Len() == 2 {
		if s, ok := seq.Items[0].(string); ok && s == "unquote" {
			return seq.Items[1], true
		}
	}

	if seq.Len() == 1 {
		if m, ok := seq.Items[0].(*Mapping); ok && m.Len() == 1 && m.Keys()[0] == "unquote" {
			v, _ := m.Get("unquote")

			return v, true
		}
	}

	return nil, false
}

// interpolate rewrites a string expression's `#{ref}` markers with the
// stringified dotted-path lookup of ref, and unescapes the literal
// "`#" sequence to "#". An unterminated `#{` fails unterminated-string-interp.
func interpolate(s string, env *Environment, ev *Evaluator) (Value, error) {
	if !strings.Contains(s, "#") {
		return s, nil
	}

	var b strings.Builder

	for i := 0; i < len(s); {
		switch {
		case s[i] == '`' && i+1 < len(s) && s[i+1] == '#':
			b.WriteByte('#')
			i += 2

		case s[i] == '#' && i+1 < len(s) && s[i+1] == '{':
			close := strings.IndexByte(s[i+2:], '}')
			if close < 0 {
				return nil, Raise("unterminated-string-interp", s)
			}

			ref := s[i+2 : i+2+close]

			v, err := lookupPath(env, ref)
			if err != nil {
				return nil, err
			}

			b.WriteString(stringify(v))

			i = i + 2 + close + 1

		default:
			b.WriteByte(s[i])
			i++
		}
	}

	return b.String(), nil
}

// stringify renders v as interpolated text: null becomes "null"; strings
// are emitted bare; everything else uses its native String rendering.
func stringify(v Value) string {
	if v == nil {
		return "null"
	}

	if s, ok := v.(string); ok {
		return s
	}

	return String(v)
}

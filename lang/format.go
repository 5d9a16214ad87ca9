package lang

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// String renders v in JSPR's native, human-facing form: sequences as
// "[a, b, c]", mappings as "{k: v, ...}", strings bare (unquoted), and
// everything else via its Go native formatting. It backs string
// interpolation (quote.go's stringify) and structured-log payload
// rendering (error.go's LogValue).
func String(v Value) string {
	var b strings.Builder
	writeString(&b, v)

	return b.String()
}

func writeString(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")

	case bool:
		b.WriteString(strconv.FormatBool(t))

	case int64:
		b.WriteString(strconv.FormatInt(t, 10))

	case float64:
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))

	case string:
		b.WriteString(t)

	case *Sequence:
		b.WriteByte('[')

		for i, it := range t.Items {
			if i > 0 {
				b.WriteString(", ")
			}

			writeString(b, it)
		}

		b.WriteByte(']')

	case *Mapping:
		b.WriteByte('{')

		for i, k := range t.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}

			val, _ := t.Get(k)

			b.WriteString(k)
			b.WriteString(": ")
			writeString(b, val)
		}

		b.WriteByte('}')

	case *Closure:
		fmt.Fprintf(b, "<closure %s>", t.Name)

	case *Macro:
		fmt.Fprintf(b, "<macro %s>", t.Name)

	case *Function:
		fmt.Fprintf(b, "<function %s>", t.Name)

	case *SpecialForm:
		fmt.Fprintf(b, "<special-form %s>", t.Name)

	case *Module:
		fmt.Fprintf(b, "<module %s>", t.Name)

	case *Environment:
		b.WriteString("<env>")

	case *Iterator:
		b.WriteString("<iterator>")

	default:
		fmt.Fprintf(b, "%v", t)
	}
}

// Repr renders v the way str.repr does: like String, except a string
// value is rendered quoted (via strconv.Quote) rather than bare, so it is
// distinguishable from its surrounding text when embedded in a larger
// rendering (print's non-string argument formatting).
func Repr(v Value) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return String(v)
}

// FormatJSON renders v as a JSON document via Go's native marshaling of the
// plain-data tree produced by toPlain.
func FormatJSON(v Value) (string, error) {
	out, err := json.MarshalIndent(toPlain(v), "", "  ")
	if err != nil {
		return "", Raise("format-error").(*Error).Wrap(err)
	}

	return string(out), nil
}

// FormatYAML renders v as a YAML document via goccy/go-yaml's marshaling of
// the plain-data tree produced by toPlain.
func FormatYAML(v Value) (string, error) {
	out, err := yaml.Marshal(toPlain(v))
	if err != nil {
		return "", Raise("format-error").(*Error).Wrap(err)
	}

	return string(out), nil
}

// toPlain converts a Value tree to plain Go data (map[string]any, []any,
// and scalars) suitable for encoding/json and goccy/go-yaml, which know
// nothing of Sequence/Mapping's ordered internals. Callables render as
// their String form, since neither encoding has a native notion of them.
func toPlain(v Value) any {
	switch t := v.(type) {
	case *Sequence:
		out := make([]any, len(t.Items))
		for i, it := range t.Items {
			out[i] = toPlain(it)
		}

		return out

	case *Mapping:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			out[k] = toPlain(val)
		}

		return out

	case nil, bool, int64, float64, string:
		return t

	default:
		return String(t)
	}
}

package lang

import (
	"log/slog"
	"strings"

	"github.com/ardnew/jspr/log"
)

// Evaluator threads optional diagnostics through a chain of Eval calls. A
// nil *Evaluator is valid: Eval(expr, env) is available as a package-level
// convenience that allocates a bare Evaluator with logging off.
type Evaluator struct {
	// Log, when non-zero, receives Trace-level spans around special-form
	// dispatch (entry name, argument count). At the kernel's default level
	// (Info) these are silent, so production evaluation has zero logging
	// overhead beyond the level check.
	Log log.Logger
}

// NewEvaluator returns an Evaluator using the given logger for trace spans.
func NewEvaluator(logger log.Logger) *Evaluator {
	return &Evaluator{Log: logger}
}

// Eval is a package-level convenience for evaluating expr against env with
// tracing disabled.
func Eval(expr Value, env *Environment) (Value, error) {
	return (&Evaluator{}).Eval(expr, env)
}

// Eval reduces expr to a Value within env, dispatching on expr's kind per
// the reducer contract: atoms pass through; strings are looked up (dotted
// reference) or interpolated; sequences are call forms; single-entry
// mappings are auto-sequence calls or definitions.
func (ev *Evaluator) Eval(expr Value, env *Environment) (Value, error) {
	switch v := expr.(type) {
	case nil, bool, int64, float64:
		return expr, nil
	case string:
		return ev.evalString(v, env)
	case *Sequence:
		return ev.evalSequence(v, env)
	case *Mapping:
		return ev.evalMapping(v, env)
	default:
		// Callables, environments, keyword sequences, and any other
		// already-reduced runtime value evaluate to themselves.
		return expr, nil
	}
}

// EvalDo evaluates each element of a sequence in a new child environment
// and returns the last result, or nil if the sequence is empty. It is the
// shape every document-level "program" is evaluated as, and is exposed as
// the `do`/`__eval_do_seq__` kernel forms.
func (ev *Evaluator) EvalDo(items *Sequence, env *Environment) (Value, error) {
	child := env.NewChild()

	var result Value

	for _, expr := range items.Items {
		v, err := ev.Eval(expr, child)
		if err != nil {
			return nil, err
		}

		result = v
	}

	return result, nil
}

func (ev *Evaluator) evalString(s string, env *Environment) (Value, error) {
	if strings.HasPrefix(s, ".") {
		return lookupPath(env, s[1:])
	}

	return interpolate(s, env, ev)
}

func (ev *Evaluator) evalSequence(seq *Sequence, env *Environment) (Value, error) {
	if seq.Len() == 0 {
		return seq, nil
	}

	if firstIsSingleEntryMap(seq) {
		if !isKeywordCallShape(seq) {
			return nil, Raise("invalid-kw-apply", seq)
		}

		return ev.evalKeywordCall(seq, env)
	}

	head := seq.Items[0]
	tail := seq.Items[1:]

	var (
		callee Value
		err    error
	)

	if name, ok := head.(string); ok {
		callee, err = lookupPath(env, name)
	} else {
		callee, err = ev.Eval(head, env)
	}

	if err != nil {
		return nil, err
	}

	return ev.dispatch(callee, env, Args{Pos: tail})
}

// firstIsSingleEntryMap reports whether seq's head is a single-entry
// mapping, the trigger for keyword-call dispatch.
func firstIsSingleEntryMap(seq *Sequence) bool {
	first, ok := seq.Items[0].(*Mapping)

	return ok && first.Len() == 1
}

// isKeywordCallShape reports whether every element of seq is a
// single-entry mapping, the shape the reducer treats as a keyword call.
func isKeywordCallShape(seq *Sequence) bool {
	for _, it := range seq.Items {
		m, ok := it.(*Mapping)
		if !ok || m.Len() != 1 {
			return false
		}
	}

	return true
}

func (ev *Evaluator) evalKeywordCall(seq *Sequence, env *Environment) (Value, error) {
	kw, err := buildKeywordSequence(seq)
	if err != nil {
		return nil, err
	}

	callee, err := lookupPath(env, kw.FirstKey())
	if err != nil {
		return nil, err
	}

	return ev.dispatch(callee, env, Args{KW: kw})
}

func buildKeywordSequence(seq *Sequence) (*KeywordSequence, error) {
	pairs := make([]KVPair, 0, seq.Len())

	for _, it := range seq.Items {
		m, _ := it.(*Mapping)

		k := m.Keys()[0]

		v, _ := m.Get(k)

		nk, nv, err := NormalizeKey(k, v)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, KVPair{Key: nk, Value: nv})
	}

	return &KeywordSequence{Pairs: pairs}, nil
}

func (ev *Evaluator) evalMapping(m *Mapping, env *Environment) (Value, error) {
	if m.Len() != 1 {
		return nil, Raise("invalid-bare-map", m)
	}

	key := m.Keys()[0]

	val, _ := m.Get(key)

	nkey, nval, err := NormalizeKey(key, val)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(nkey, "-") {
		name := nkey[1:]

		kw := &KeywordSequence{Pairs: []KVPair{{Key: name, Value: nval}}}

		callee, err := lookupPath(env, name)
		if err != nil {
			return nil, err
		}

		return ev.dispatch(callee, env, Args{KW: kw})
	}

	if strings.HasSuffix(nkey, "=") {
		name := strings.TrimSuffix(nkey, "=")

		v, err := ev.Eval(nval, env)
		if err != nil {
			return nil, err
		}

		env.Define(name, v)

		return v, nil
	}

	return nil, Raise("invalid-bare-map", m)
}

// dispatch applies callee to args in env, per the calling-convention kind
// table: Function/Closure evaluate their arguments eagerly; SpecialForm
// and Macro receive raw arguments.
func (ev *Evaluator) dispatch(callee Value, env *Environment, args Args) (Value, error) {
	switch c := callee.(type) {
	case *Function:
		evaluated, err := ev.evalArgs(args, env)
		if err != nil {
			return nil, err
		}

		return c.Impl(ev, env, evaluated)

	case *SpecialForm:
		ev.trace(c.Name, args)

		return c.Impl(ev, env, args)

	case *Closure:
		evaluated, err := ev.evalArgs(args, env)
		if err != nil {
			return nil, err
		}

		return ev.ApplyClosure(c, evaluated)

	case *Macro:
		code, err := ev.ApplyClosure(c.Wrapped, args)
		if err != nil {
			return nil, err
		}

		return ev.Eval(code, env)

	case *Module:
		return nil, Raise("invalid-apply", c.Name)

	default:
		return nil, Raise("invalid-apply-func", callee)
	}
}

func (ev *Evaluator) trace(name string, args Args) {
	if ev == nil || ev.Log.Logger == nil {
		return
	}

	ev.Log.Trace("dispatch special form",
		slog.String("form", name),
		slog.Int("argc", args.Len()))
}

// evalArgs evaluates a raw Args shape in a new child of env, preserving
// the positional/keyword shape.
func (ev *Evaluator) evalArgs(args Args, env *Environment) (Args, error) {
	child := env.NewChild()

	if args.IsKeyword() {
		pairs := make([]KVPair, 0, len(args.KW.Pairs))

		for _, p := range args.KW.Pairs {
			v, err := ev.Eval(p.Value, child)
			if err != nil {
				return Args{}, err
			}

			pairs = append(pairs, KVPair{Key: p.Key, Value: v})
		}

		return Args{KW: &KeywordSequence{Pairs: pairs}}, nil
	}

	vals := make([]Value, 0, len(args.Pos))

	for _, e := range args.Pos {
		v, err := ev.Eval(e, child)
		if err != nil {
			return Args{}, err
		}

		vals = append(vals, v)
	}

	return Args{Pos: vals}, nil
}

// ApplyClosure binds args (already in the correct eager-or-raw shape for
// the caller's purpose) to c's parameters in a frame parented to c's
// captured environment, binds __recurse__ to c itself, and evaluates the
// body in that frame.
func (ev *Evaluator) ApplyClosure(c *Closure, args Args) (Value, error) {
	frame := c.Env.NewChild()
	frame.Define("__recurse__", c)

	if args.IsKeyword() {
		if len(c.Params) == 0 {
			if args.KW.Len() != 0 {
				return nil, Raise("invalid-args", c.Name)
			}
		} else {
			vals, err := unpackKwlist(c.Name, args, c.Params[1:])
			if err != nil {
				return nil, err
			}

			for i, p := range c.Params {
				frame.Define(p, vals[i])
			}
		}
	} else {
		if len(args.Pos) != len(c.Params) {
			return nil, Raise("invalid-args", c.Name)
		}

		for i, p := range c.Params {
			frame.Define(p, args.Pos[i])
		}
	}

	return ev.Eval(c.Body, frame)
}

// Apply invokes callee with args in env — the shared entry point behind
// the `apply` kernel function and any host code that needs to call back
// into JSPR values.
func (ev *Evaluator) Apply(callee Value, args Args, env *Environment) (Value, error) {
	return ev.dispatch(callee, env, args)
}

// lookupPath resolves a dotted-path reference ("name.sub.sub") against
// env: the first segment is an environment lookup; each following segment
// walks the previous value's Attributer protocol.
func lookupPath(env *Environment, path string) (Value, error) {
	parts := strings.Split(path, ".")

	v, ok := env.Lookup(parts[0])
	if !ok {
		return nil, Raise("env-name-error", parts[0])
	}

	for _, seg := range parts[1:] {
		a, ok := v.(Attributer)
		if !ok {
			return nil, Raise("no-such-attr", seg)
		}

		nv, ok := a.Attr(seg)
		if !ok {
			if _, isMod := v.(*Module); isMod {
				return nil, Raise("mod-name-error", seg)
			}

			return nil, Raise("no-such-attr", seg)
		}

		v = nv
	}

	return v, nil
}

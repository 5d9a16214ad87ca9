package lang

// Args is a call's argument vector in one of the two calling-convention
// shapes: a positional list of (already-dispatch-appropriate) Values, or
// a KeywordSequence built from a sequence of single-entry mappings.
type Args struct {
	Pos []Value
	KW  *KeywordSequence
}

// PosArgs builds a positional Args from the given values.
func PosArgs(vals ...Value) Args {
	return Args{Pos: vals}
}

// KWArgs builds a keyword-sequence Args.
func KWArgs(kw *KeywordSequence) Args {
	return Args{KW: kw}
}

// IsKeyword reports whether args uses the KeywordSequence shape.
func (a Args) IsKeyword() bool {
	return a.KW != nil
}

// Len returns the argument count regardless of shape.
func (a Args) Len() int {
	if a.IsKeyword() {
		return a.KW.Len()
	}

	return len(a.Pos)
}

// FunctionImpl is the Go implementation of a Function: it receives
// already-evaluated arguments (evaluated in a new child of env) plus the
// calling environment itself, since a handful of kernel functions (`let`)
// bind into the caller's frame rather than merely computing a value.
type FunctionImpl func(ev *Evaluator, env *Environment, args Args) (Value, error)

// Function is a callable whose arguments the interpreter evaluates (in a
// new child environment) before invocation.
type Function struct {
	Name string
	Impl FunctionImpl
}

// SpecialFormImpl is the Go implementation of a SpecialForm: it receives
// raw, unevaluated arguments and the caller's environment, and decides
// itself what to evaluate and when.
type SpecialFormImpl func(ev *Evaluator, env *Environment, args Args) (Value, error)

// SpecialForm is a callable that receives raw unevaluated arguments. A
// handful of kernel names (`seq`) are both directly callable and a
// dotted-access namespace (`seq.len`, `seq.join`, ...); Sub, when set,
// carries that namespace's entries so dotted lookup resolves through the
// same binding instead of needing a second top-level name.
type SpecialForm struct {
	Name string
	Impl SpecialFormImpl
	Sub  *Mapping
}

// Attr implements Attributer against Sub, when present.
func (f *SpecialForm) Attr(name string) (Value, bool) {
	if f.Sub == nil {
		return nil, false
	}

	return f.Sub.Get(name)
}

// Closure is a lambda: a parameter-name list, a body expression, and an
// environment captured by snapshot-clone when the closure was built.
type Closure struct {
	Name   string
	Params []string
	Body   Value
	Env    *Environment
}

// Macro wraps a Closure: invocation calls the wrapped closure with its raw,
// unevaluated arguments to obtain new code, then evaluates that code in the
// caller's environment. Callables other than a Closure cannot be wrapped.
type Macro struct {
	Name    string
	Wrapped *Closure
}

// Module is a named bundle of callables and values; attribute lookup
// returns an entry or fails mod-name-error. A Module participates in a
// call only via the entry addressed through attribute lookup — the module
// value itself is not directly callable.
type Module struct {
	Name    string
	Entries *Mapping
}

// Attr implements Attributer, failing mod-name-error (via the caller,
// which converts a missing lookup into that raised kind) when name is not
// an entry of the module.
func (m *Module) Attr(name string) (Value, bool) {
	return m.Entries.Get(name)
}

// NewModule builds a Module from a name and its entries.
func NewModule(name string, entries map[string]Value) *Module {
	m := NewMapping()
	for k, v := range entries {
		m.Set(k, v)
	}

	return &Module{Name: name, Entries: m}
}

// unary requires args to carry exactly one argument (the sole positional
// value, or the first value of a single-pair KeywordSequence) and returns
// it, failing invalid-args otherwise.
func unary(name string, args Args) (Value, error) {
	if args.IsKeyword() {
		if args.KW.Len() != 1 {
			return nil, Raise("invalid-args", name)
		}

		return args.KW.FirstArg(), nil
	}

	if len(args.Pos) != 1 {
		return nil, Raise("invalid-args", name)
	}

	return args.Pos[0], nil
}

// unpackKwlist returns (first_arg, args[keys[0]], ..., args[keys[n-1]]):
// for a KeywordSequence, failing invalid-args if any named key is absent;
// for a positional Args, it returns the values verbatim provided their
// count equals len(keys)+1.
func unpackKwlist(name string, args Args, keys []string) ([]Value, error) {
	if !args.IsKeyword() {
		if len(args.Pos) != len(keys)+1 {
			return nil, Raise("invalid-args", name)
		}

		return args.Pos, nil
	}

	out := make([]Value, 0, len(keys)+1)
	out = append(out, args.KW.FirstArg())

	for _, k := range keys {
		v, ok := args.KW.TryGet(k, true)
		if !ok {
			return nil, Raise("invalid-args", name, k)
		}

		out = append(out, v)
	}

	return out, nil
}

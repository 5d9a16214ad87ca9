package lang

import (
	"fmt"
	"io"
	"os"
	"time"
)

// RegisterHost binds the host-provided callables injected into the
// environment as ordinary callables: print (writing to out), a time
// module, and an os module wrapping process environment access. Register
// (kernel.go) must be called first; RegisterHost is separate so an
// embedder can omit or replace these.
func RegisterHost(env *Environment, out io.Writer) {
	env.Define("print", function("print", printFn(out)))
	env.Define("time", NewModule("time", map[string]Value{
		"now": function("time.now", timeNowFn),
	}))
	env.Define("os", NewModule("os", map[string]Value{
		"env": function("os.env", osEnvFn),
	}))
}

// printFn renders each positional argument space-separated (via str.repr
// semantics for non-string values) to out, returning the last argument (or
// null if called with none). It closes over a fixed host resource (the
// writer) the same way osEnvFn closes over the process environment.
func printFn(out io.Writer) FunctionImpl {
	return func(ev *Evaluator, env *Environment, args Args) (Value, error) {
		vals := args.Pos
		if args.IsKeyword() {
			vals = make([]Value, 0, args.KW.Len())
			for _, p := range args.KW.Pairs {
				vals = append(vals, p.Value)
			}
		}

		for i, v := range vals {
			if i > 0 {
				fmt.Fprint(out, " ")
			}

			if s, ok := v.(string); ok {
				fmt.Fprint(out, s)
			} else {
				fmt.Fprint(out, Repr(v))
			}
		}

		fmt.Fprintln(out)

		if len(vals) == 0 {
			return nil, nil
		}

		return vals[len(vals)-1], nil
	}
}

func timeNowFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	return time.Now().Unix(), nil
}

// osEnvFn returns the named process environment variable's value, or ""
// if unset, via a direct os.LookupEnv call rather than a precomputed map,
// since JSPR programs are one-shot evaluations with no "freeze the
// environment at startup" requirement.
func osEnvFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("os.env", args)
	if err != nil {
		return nil, err
	}

	name, ok := v.(string)
	if !ok {
		return nil, Raise("invalid-args", "os.env", v)
	}

	val, _ := os.LookupEnv(name)

	return val, nil
}

package jsprtest

import (
	"fmt"
	"os"

	"github.com/ardnew/jspr/lang"
)

// Result is the outcome of running a single Case.
type Result struct {
	Case Case
	Err  error // non-nil means the case failed
}

// RootEnvironment builds a fresh environment with the kernel and host
// built-ins registered, the same wiring the `eval` subcommand uses, so
// fixtures observe the same bindings real programs do.
func RootEnvironment() *lang.Environment {
	env := lang.NewEnvironment()
	lang.Register(env)
	lang.RegisterHost(env, os.Stdout)

	return env
}

// Run executes a single case against a fresh RootEnvironment and reports
// whether its outcome matched the case's expect/rescue assertion.
func Run(c Case) Result {
	env := RootEnvironment()

	if c.Env != nil {
		for _, name := range c.Env.Keys() {
			v, _ := c.Env.Get(name)

			evaluated, err := lang.Eval(v, env)
			if err != nil {
				return Result{Case: c, Err: fmt.Errorf("env %q: %w", name, err)}
			}

			env.Define(name, evaluated)
		}
	}

	result, err := lang.Eval(c.Code, env)

	switch {
	case c.HasExpect:
		if err != nil {
			return Result{Case: c, Err: fmt.Errorf("unexpected error: %w", err)}
		}

		rel, cerr := lang.Compare(result, c.Expect)
		if cerr != nil {
			return Result{Case: c, Err: fmt.Errorf("comparing result: %w", cerr)}
		}

		if rel != "eq" {
			return Result{Case: c, Err: fmt.Errorf("got %s, want %s", lang.Repr(result), lang.Repr(c.Expect))}
		}

		return Result{Case: c}

	case c.HasRescue:
		if err == nil {
			return Result{Case: c, Err: fmt.Errorf("expected a raise, got %s", lang.Repr(result))}
		}

		jerr, ok := err.(*lang.Error)
		if !ok || jerr.Raised() == nil {
			return Result{Case: c, Err: fmt.Errorf("expected a JSPR raise, got %v", err)}
		}

		rel, cerr := lang.Compare(jerr.Raised(), c.Rescue)
		if cerr != nil {
			return Result{Case: c, Err: fmt.Errorf("comparing raise: %w", cerr)}
		}

		if rel != "eq" {
			return Result{Case: c, Err: fmt.Errorf("raised %s, want %s", lang.Repr(jerr.Raised()), lang.Repr(c.Rescue))}
		}

		return Result{Case: c}
	}

	return Result{Case: c, Err: fmt.Errorf("case has neither expect nor rescue")}
}

// RunFixture runs every case in f and returns one Result per case, in order.
func RunFixture(f *Fixture) []Result {
	results := make([]Result, 0, len(f.Cases))

	for _, c := range f.Cases {
		results = append(results, Run(c))
	}

	return results
}

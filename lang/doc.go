// Package lang implements the JSPR evaluator: a tree-walking interpreter
// over already-parsed JSON/YAML values.
//
// A JSPR program is itself a Value — an atom, an ordered sequence, or an
// insertion-ordered mapping. Evaluating that Value against an Environment
// reduces it to a result Value. The package exposes the reducer (Eval),
// the environment/closure model (Environment, Closure, Macro), the
// key-normalization rules that give mapping keys their call/quote/define
// sugar, and the kernel of built-in special forms (Register).
//
// Callers typically build a root Environment, call Register (and
// RegisterHost, for the host library), then Eval a loaded document
// against it:
//
//	env := lang.NewEnvironment()
//	lang.Register(env)
//	lang.RegisterHost(env, os.Stdout)
//	result, err := lang.Eval(doc, env)
package lang

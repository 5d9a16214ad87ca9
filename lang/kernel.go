package lang

// Register binds every kernel built-in form named in the component-H
// table into env: the control-flow/binding special forms, quoting,
// arithmetic/comparison, the `test` infix chain, the lazy iterator
// functions, and the dotted `seq`/`str` modules. It does not register any
// host-provided callable (print, time.now, os.env) — see RegisterHost.
func Register(env *Environment) {
	registerControlForms(env)
	registerBindingForms(env)
	registerQuotingForms(env)
	registerBooleanForms(env)
	registerArithmetic(env)
	registerTest(env)
	registerReflection(env)

	env.Define("iota", &Function{Name: "iota", Impl: iotaFn})
	env.Define("iter", NewModule("iter", map[string]Value{
		"map":    &Function{Name: "iter.map", Impl: iterMapFn},
		"take":   &Function{Name: "iter.take", Impl: iterTakeFn},
		"reduce": &Function{Name: "iter.reduce", Impl: iterReduceFn},
	}))
	env.Define("str", strModule())
}

func special(name string, impl SpecialFormImpl) *SpecialForm {
	return &SpecialForm{Name: name, Impl: impl}
}

func function(name string, impl FunctionImpl) *Function {
	return &Function{Name: name, Impl: impl}
}

func registerControlForms(env *Environment) {
	env.Define("if", special("if", ifSF))
	env.Define("cond", special("cond", condSF))
	env.Define("do", special("do", doSF))
}

func ifSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("if", args, []string{"then", "else"})
	if err != nil {
		return nil, err
	}

	condExpr, thenExpr, elseExpr := vals[0], vals[1], vals[2]

	cond, err := ev.Eval(condExpr, env)
	if err != nil {
		return nil, err
	}

	switch cond {
	case true:
		return ev.Eval(thenExpr, env)
	case false:
		return ev.Eval(elseExpr, env)
	default:
		return nil, Raise("invalid-if-condition", cond)
	}
}

func condSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("cond", args)
	if err != nil {
		return nil, err
	}

	branches, ok := raw.(*Sequence)
	if !ok {
		return nil, Raise("invalid-cond-branch", raw)
	}

	for _, b := range branches.Items {
		pair, ok := b.(*Sequence)
		if !ok || pair.Len() != 2 {
			return nil, Raise("invalid-cond-branch", b)
		}

		test, err := ev.Eval(pair.Items[0], env)
		if err != nil {
			return nil, err
		}

		truth, ok := test.(bool)
		if !ok {
			return nil, Raise("invalid-cond-condition", test)
		}

		if truth {
			return ev.Eval(pair.Items[1], env)
		}
	}

	return nil, Raise("cond-no-match")
}

func doSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("do", args)
	if err != nil {
		return nil, err
	}

	items, ok := raw.(*Sequence)
	if !ok {
		return nil, Raise("invalid-do", raw)
	}

	return ev.EvalDo(items, env)
}

func registerBindingForms(env *Environment) {
	env.Define("let", function("let", letFn))
	env.Define("ref", special("ref", refSF))
	env.Define("lambda", special("lambda", lambdaSF))
	env.Define("macro", special("macro", macroSF))
	env.Define("apply", function("apply", applyFn))
	env.Define("eval", function("eval", evalFn))
	env.Define("raise", function("raise", raiseFn))
	env.Define("assert", special("assert", assertSF))
}

// letFn binds name to value in env — the *caller's* frame, since dispatch
// passes a Function's Impl the original environment, not the child frame
// used to evaluate its arguments.
func letFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("let", args, []string{"be"})
	if err != nil {
		return nil, err
	}

	name, ok := vals[0].(string)
	if !ok {
		return nil, Raise("invalid-varname", vals[0])
	}

	value := vals[1]

	if c, ok := value.(*Closure); ok && c.Name == "" {
		named := *c
		named.Name = name
		value = &named
	}

	env.Define(name, value)

	return value, nil
}

func refSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("ref", args)
	if err != nil {
		return nil, err
	}

	nameVal, err := ev.Eval(raw, env)
	if err != nil {
		return nil, err
	}

	name, ok := nameVal.(string)
	if !ok {
		return nil, Raise("invalid-varname", nameVal)
	}

	v, ok := env.Lookup(name)
	if !ok {
		return nil, Raise("env-name-error", name)
	}

	return v, nil
}

func lambdaSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	c, err := buildClosure("lambda", env, args)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func macroSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	c, err := buildClosure("macro", env, args)
	if err != nil {
		return nil, err
	}

	return &Macro{Name: c.Name, Wrapped: c}, nil
}

func buildClosure(name string, env *Environment, args Args) (*Closure, error) {
	vals, err := unpackKwlist(name, args, []string{"is"})
	if err != nil {
		return nil, err
	}

	paramSeq, ok := vals[0].(*Sequence)
	if !ok {
		return nil, Raise("invalid-args", name, vals[0])
	}

	params := make([]string, 0, paramSeq.Len())

	for _, p := range paramSeq.Items {
		s, ok := p.(string)
		if !ok {
			return nil, Raise("invalid-args", name, p)
		}

		params = append(params, s)
	}

	return &Closure{Params: params, Body: vals[1], Env: env.Clone()}, nil
}

func applyFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("apply", args, []string{"with"})
	if err != nil {
		return nil, err
	}

	callee, argvec := vals[0], vals[1]

	if !IsCallable(callee) {
		return nil, Raise("invalid-apply-func", callee, argvec)
	}

	var callArgs Args

	switch a := argvec.(type) {
	case *Sequence:
		callArgs = Args{Pos: a.Items}
	case *KeywordSequence:
		callArgs = Args{KW: a}
	default:
		return nil, Raise("invalid-apply-args", callee, argvec)
	}

	return ev.Apply(callee, callArgs, env)
}

func evalFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("eval", args, []string{"with"})
	if err != nil {
		return nil, err
	}

	expr, envVal := vals[0], vals[1]

	target, ok := envVal.(*Environment)
	if !ok {
		return nil, Raise("invalid-eval-env", envVal)
	}

	return ev.Eval(expr, target)
}

func raiseFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("raise", args)
	if err != nil {
		return nil, err
	}

	return nil, NewError(v)
}

func assertSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("assert", args)
	if err != nil {
		return nil, err
	}

	v, err := ev.Eval(raw, env)
	if err != nil {
		return nil, err
	}

	truth, ok := v.(bool)
	if !ok {
		return nil, Raise("invalid-assert-condition", raw, v)
	}

	if !truth {
		return nil, Raise("assertion-failed", raw)
	}

	return true, nil
}

func registerQuotingForms(env *Environment) {
	env.Define("quote", special("quote", quoteSF))
	env.Define("quasiquote", special("quasiquote", quasiquoteSF))
	env.Define("seq", &SpecialForm{Name: "seq", Impl: seqSF, Sub: seqEntries()})
	env.Define("map", special("map", mapSF))
}

func quoteSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	return unary("quote", args)
}

func quasiquoteSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("quasiquote", args)
	if err != nil {
		return nil, err
	}

	return Quasiquote(ev, raw, env)
}

func seqSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("seq", args)
	if err != nil {
		return nil, err
	}

	items, ok := raw.(*Sequence)
	if !ok {
		return nil, Raise("invalid-seq", raw)
	}

	out := make([]Value, len(items.Items))

	for i, it := range items.Items {
		v, err := ev.Eval(it, env)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return NewSequence(out...), nil
}

func mapSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("map", args)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(*Mapping)
	if !ok {
		return nil, Raise("invalid-map", raw)
	}

	out := NewMapping()

	for _, k := range m.Keys() {
		val, _ := m.Get(k)

		v, err := ev.Eval(val, env)
		if err != nil {
			return nil, err
		}

		out.Set(k, v)
	}

	return out, nil
}

func registerBooleanForms(env *Environment) {
	env.Define("or", special("or", orSF))
	env.Define("and", special("and", andSF))
	env.Define("xor", special("xor", xorSF))
}

func orSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := rawOperands(args)
	if err != nil {
		return nil, err
	}

	for _, raw := range vals {
		v, err := ev.Eval(raw, env)
		if err != nil {
			return nil, err
		}

		b, ok := v.(bool)
		if !ok {
			return nil, Raise("invalid-or-condition", v)
		}

		if b {
			return true, nil
		}
	}

	return false, nil
}

func andSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := rawOperands(args)
	if err != nil {
		return nil, err
	}

	for _, raw := range vals {
		v, err := ev.Eval(raw, env)
		if err != nil {
			return nil, err
		}

		b, ok := v.(bool)
		if !ok {
			return nil, Raise("invalid-and-condition", v)
		}

		if !b {
			return false, nil
		}
	}

	return true, nil
}

func xorSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := rawOperands(args)
	if err != nil {
		return nil, err
	}

	found := false

	for _, raw := range vals {
		v, err := ev.Eval(raw, env)
		if err != nil {
			return nil, err
		}

		b, ok := v.(bool)
		if !ok {
			return nil, Raise("invalid-xor-condition", v)
		}

		if b {
			if found {
				return false, nil
			}

			found = true
		}
	}

	return found, nil
}

// rawOperands returns or/and/xor's raw operand expressions regardless of
// call shape: positional args verbatim, or a keyword sequence's values.
func rawOperands(args Args) ([]Value, error) {
	if !args.IsKeyword() {
		return args.Pos, nil
	}

	out := make([]Value, 0, args.KW.Len())
	for _, p := range args.KW.Pairs {
		out = append(out, p.Value)
	}

	return out, nil
}

func registerReflection(env *Environment) {
	env.Define("__env__", special("__env__", envSF))
	env.Define("__eval__", special("__eval__", dunderEvalSF))
	env.Define("__eval_do_seq__", special("__eval_do_seq__", doSF))
}

func envSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	return env, nil
}

func dunderEvalSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	raw, err := unary("__eval__", args)
	if err != nil {
		return nil, err
	}

	code, err := ev.Eval(raw, env)
	if err != nil {
		return nil, err
	}

	return ev.Eval(code, env)
}

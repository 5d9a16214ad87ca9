package lang

// testOpAliases maps every accepted `test` operator spelling to its
// canonical form.
var testOpAliases = map[string]string{
	"and":          "and",
	"or":           "or",
	"eq":           "eq",
	"equal-to":     "eq",
	"neq":          "neq",
	"not-equal-to": "neq",
	"gt":           "gt",
	"greater-than": "gt",
	"lt":           "lt",
	"less-than":    "lt",
	"gte":          "gte",
	"at-least":     "gte",
	"lte":          "lte",
	"at-most":      "lte",
	"in":           "in",
	"not-in":       "not-in",
}

func registerTest(env *Environment) {
	env.Define("test", special("test", testSF))
}

// testSF evaluates an infix comparison chain encoded as a KeywordSequence:
// the first pair's value is the initial left-hand expression; each
// subsequent pair names an operator and a right-hand expression, folding
// into a running left-hand value. The final value must be boolean.
func testSF(ev *Evaluator, env *Environment, args Args) (Value, error) {
	if !args.IsKeyword() {
		return nil, Raise("invalid-test-args", args)
	}

	kw := args.KW
	if kw.Len() == 0 {
		return nil, Raise("invalid-test-args", args)
	}

	lhs, err := ev.Eval(kw.FirstArg(), env)
	if err != nil {
		return nil, err
	}

	for _, p := range kw.Pairs[1:] {
		canon, ok := testOpAliases[p.Key]
		if !ok {
			return nil, Raise("invalid-test-oper", p.Key)
		}

		switch canon {
		case "and":
			truth, ok := lhs.(bool)
			if !ok || !truth {
				return nil, Raise("invalid-test-and-condition", lhs)
			}

			rhs, err := ev.Eval(p.Value, env)
			if err != nil {
				return nil, err
			}

			lhs = rhs

		case "or":
			truth, ok := lhs.(bool)
			if !ok {
				return nil, Raise("invalid-test-or-condition", lhs)
			}

			if truth {
				return true, nil
			}

			rhs, err := ev.Eval(p.Value, env)
			if err != nil {
				return nil, err
			}

			lhs = rhs

		case "eq", "neq":
			rhs, err := ev.Eval(p.Value, env)
			if err != nil {
				return nil, err
			}

			c, err := Compare(lhs, rhs)
			if err != nil {
				return nil, err
			}

			if canon == "eq" {
				lhs = c == "eq"
			} else {
				lhs = c != "eq"
			}

		case "gt", "lt", "gte", "lte":
			rhs, err := ev.Eval(p.Value, env)
			if err != nil {
				return nil, err
			}

			c, err := Compare(lhs, rhs)
			if err != nil {
				return nil, err
			}

			switch canon {
			case "gt":
				lhs = c == "gt"
			case "lt":
				lhs = c == "lt"
			case "gte":
				lhs = c == "gt" || c == "eq"
			case "lte":
				lhs = c == "lt" || c == "eq"
			}

		case "in", "not-in":
			rhs, err := ev.Eval(p.Value, env)
			if err != nil {
				return nil, err
			}

			found, err := membership(lhs, rhs)
			if err != nil {
				return nil, err
			}

			if canon == "in" {
				lhs = found
			} else {
				lhs = !found
			}
		}
	}

	truth, ok := lhs.(bool)
	if !ok {
		return nil, Raise("invalid-test-value", lhs)
	}

	return truth, nil
}

// membership reports whether needle appears in haystack, a *Sequence (by
// equality) or a *Mapping (by key membership, needle must be a string).
func membership(needle, haystack Value) (bool, error) {
	switch h := haystack.(type) {
	case *Sequence:
		for _, it := range h.Items {
			c, err := Compare(needle, it)
			if err != nil {
				continue
			}

			if c == "eq" {
				return true, nil
			}
		}

		return false, nil

	case *Mapping:
		key, ok := needle.(string)
		if !ok {
			return false, Raise("invalid-test-in", needle, haystack)
		}

		_, ok = h.Get(key)

		return ok, nil

	default:
		return false, Raise("invalid-test-in", needle, haystack)
	}
}

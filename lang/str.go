package lang

// strModule builds the `str` dotted-name module: string joining with an
// optional separator, bare stringification, and quoted representation.
func strModule() *Module {
	return NewModule("str", map[string]Value{
		"join": function("str.join", strJoinFn),
		"str":  function("str.str", strStrFn),
		"repr": function("str.repr", strReprFn),
	})
}

func strJoinFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	var seq Value

	sep := ""

	if args.IsKeyword() {
		seq = args.KW.FirstArg()

		if w, ok := args.KW.TryGet("with", true); ok {
			s, ok := w.(string)
			if !ok {
				return nil, Raise("invalid-str.join-with", w)
			}

			sep = s
		}
	} else {
		if len(args.Pos) == 0 {
			return nil, Raise("invalid-str.join-seq", nil)
		}

		seq = args.Pos[0]

		if len(args.Pos) >= 2 {
			s, ok := args.Pos[1].(string)
			if !ok {
				return nil, Raise("invalid-str.join-with", args.Pos[1])
			}

			sep = s
		}
	}

	items, ok := seqItems(seq)
	if !ok {
		return nil, Raise("invalid-str.join-seq", seq)
	}

	out := ""

	for i, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, Raise("invalid-str.join-seq", seq)
		}

		if i > 0 {
			out += sep
		}

		out += s
	}

	return out, nil
}

func strStrFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("str.str", args)
	if err != nil {
		return nil, err
	}

	return String(v), nil
}

func strReprFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("str.repr", args)
	if err != nil {
		return nil, err
	}

	return Repr(v), nil
}

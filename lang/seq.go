package lang

// seqEntries builds the `seq.*` dotted-name entries: standard sequence
// operations (len/elem/slice/join/head/tail/seq) over *Sequence and string
// values. These hang off the `seq` special form's Sub field rather than a
// separate top-level Module, since `seq` is also directly callable (the
// literal-sequence-evaluation special form).
func seqEntries() *Mapping {
	m := NewMapping()
	m.Set("len", function("seq.len", seqLenFn))
	m.Set("elem", function("seq.elem", seqElemFn))
	m.Set("slice", function("seq.slice", seqSliceFn))
	m.Set("join", function("seq.join", seqJoinFn))
	m.Set("head", function("seq.head", seqHeadFn))
	m.Set("tail", function("seq.tail", seqTailFn))
	m.Set("seq", function("seq.seq", seqSeqFn))

	return m
}

func seqItems(v Value) ([]Value, bool) {
	switch t := v.(type) {
	case *Sequence:
		return t.Items, true
	case string:
		items := make([]Value, len(t))
		for i, r := range []rune(t) {
			items[i] = string(r)
		}

		return items, true
	default:
		return nil, false
	}
}

func seqLenFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("seq.len", args)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case *Sequence:
		return int64(t.Len()), nil
	case *Mapping:
		return int64(t.Len()), nil
	case *KeywordSequence:
		return int64(t.Len()), nil
	case string:
		return int64(len([]rune(t))), nil
	default:
		return nil, Raise("invalid-len", v)
	}
}

func seqElemFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("seq.elem", args, []string{"at"})
	if err != nil {
		return nil, err
	}

	seq, at := vals[0], vals[1]

	items, ok := seqItems(seq)
	if !ok {
		return nil, Raise("invalid-elem-seq", seq)
	}

	idx, ok := toIndex(at)
	if !ok {
		return nil, Raise("invalid-elem-at", at)
	}

	if idx < 0 || idx >= len(items) {
		return nil, Raise("invalid-elem-index", seq, at)
	}

	return items[idx], nil
}

func seqSliceFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	var seq, fromV, toV Value

	if args.IsKeyword() {
		seq = args.KW.FirstArg()

		var ok bool

		fromV, ok = args.KW.TryGet("from", true)
		if !ok {
			fromV = int64(0)
		}

		items, isSeq := seqItems(seq)
		if !isSeq {
			return nil, Raise("invalid-slice-seq", seq)
		}

		toV, ok = args.KW.TryGet("to", true)
		if !ok {
			toV = int64(len(items))
		}
	} else {
		if len(args.Pos) == 0 {
			return nil, Raise("invalid-slice-seq", nil)
		}

		seq = args.Pos[0]

		items, isSeq := seqItems(seq)
		if !isSeq {
			return nil, Raise("invalid-slice-seq", seq)
		}

		fromV, toV = int64(0), int64(len(items))

		if len(args.Pos) >= 2 {
			fromV = args.Pos[1]
		}

		if len(args.Pos) >= 3 {
			toV = args.Pos[2]
		}
	}

	items, _ := seqItems(seq)

	from, ok := toIndex(fromV)
	if !ok {
		return nil, Raise("invalid-slice-from", fromV)
	}

	to, ok := toIndex(toV)
	if !ok {
		return nil, Raise("invalid-slice-to", toV)
	}

	if abs(to) < abs(from) {
		return nil, Raise("invalid-slice-range", seq, from, to)
	}

	if from < 0 || to < from || to > len(items) {
		return nil, Raise("invalid-slice-range", seq, from, to)
	}

	sliced := items[from:to]

	if s, ok := seq.(string); ok {
		return runesToString(sliced, s), nil
	}

	return NewSequence(sliced...), nil
}

func runesToString(items []Value, _ string) string {
	var b []byte
	for _, it := range items {
		s, _ := it.(string)
		b = append(b, s...)
	}

	return string(b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

func toIndex(v Value) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func seqJoinFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	var vals []Value

	if args.IsKeyword() {
		for _, p := range args.KW.Pairs {
			vals = append(vals, p.Value)
		}
	} else {
		vals = args.Pos
	}

	if len(vals) == 0 {
		return nil, Raise("invalid-join", vals)
	}

	acc := vals[0]

	for _, v := range vals[1:] {
		joined, err := joinTwo(acc, v)
		if err != nil {
			return nil, err
		}

		acc = joined
	}

	return acc, nil
}

func joinTwo(a, b Value) (Value, error) {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as + bs, nil
		}

		return nil, Raise("invalid-join", a, b)
	}

	if aseq, ok := a.(*Sequence); ok {
		if bseq, ok := b.(*Sequence); ok {
			items := make([]Value, 0, aseq.Len()+bseq.Len())
			items = append(items, aseq.Items...)
			items = append(items, bseq.Items...)

			return NewSequence(items...), nil
		}

		return nil, Raise("invalid-join", a, b)
	}

	return nil, Raise("invalid-join", a, b)
}

func seqHeadFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("seq.head", args)
	if err != nil {
		return nil, err
	}

	items, ok := seqItems(v)
	if !ok || len(items) == 0 {
		return nil, Raise("invalid-elem-seq", v)
	}

	return items[0], nil
}

func seqTailFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	v, err := unary("seq.tail", args)
	if err != nil {
		return nil, err
	}

	items, ok := seqItems(v)
	if !ok || len(items) == 0 {
		return nil, Raise("invalid-elem-seq", v)
	}

	if s, ok := v.(string); ok {
		return runesToString(items[1:], s), nil
	}

	return NewSequence(items[1:]...), nil
}

// seqSeqFn builds a literal *Sequence from its (already evaluated)
// positional arguments, the dotted-module counterpart of the `seq`
// special form's literal-sequence evaluation.
func seqSeqFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	if args.IsKeyword() {
		vals := make([]Value, 0, args.KW.Len())
		for _, p := range args.KW.Pairs {
			vals = append(vals, p.Value)
		}

		return NewSequence(vals...), nil
	}

	return NewSequence(args.Pos...), nil
}

package lang

// Iterator is a lazy sequence distinct from Sequence: it holds a source
// and a projection computed on demand, so an unbounded iota can be built
// without materializing it, and only iter.take forces a finite prefix.
type Iterator struct {
	next func() (Value, bool)
}

// NewIterator builds an Iterator from a next function: it returns
// (value, true) while elements remain, or (nil, false) when exhausted.
func NewIterator(next func() (Value, bool)) *Iterator {
	return &Iterator{next: next}
}

// Next advances the iterator, returning its next element and whether one
// was produced.
func (it *Iterator) Next() (Value, bool) {
	return it.next()
}

// rangeIterator returns an Iterator over [from, to) if bounded, or
// [from, +inf) if unbounded.
func rangeIterator(from int64, to int64, unbounded bool) *Iterator {
	cur := from

	return NewIterator(func() (Value, bool) {
		if !unbounded && cur >= to {
			return nil, false
		}

		v := cur
		cur++

		return v, true
	})
}

// iterFromValue adapts a Value (a *Sequence or an *Iterator) into an
// Iterator, failing invalid-reduce-args for anything else — the common entry
// point iter.take/iter.reduce use to accept either shape.
func iterFromValue(name string, v Value) (*Iterator, error) {
	switch t := v.(type) {
	case *Iterator:
		return t, nil

	case *Sequence:
		i := 0

		return NewIterator(func() (Value, bool) {
			if i >= t.Len() {
				return nil, false
			}

			v := t.Items[i]
			i++

			return v, true
		}), nil

	default:
		return nil, Raise("invalid-reduce-args", name, v)
	}
}

func iotaFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	switch args.Len() {
	case 0:
		return rangeIterator(0, 0, true), nil

	case 1:
		to, err := requireInt("iota", singleArg(args))
		if err != nil {
			return nil, err
		}

		return NewSequence(intRange(0, to)...), nil

	default:
		from, to, err := iotaFromTo(args)
		if err != nil {
			return nil, err
		}

		if s, ok := to.(string); ok && s == "inf" {
			return rangeIterator(from, 0, true), nil
		}

		toInt, err := requireInt("iota", to)
		if err != nil {
			return nil, err
		}

		return NewSequence(intRange(from, toInt)...), nil
	}
}

func singleArg(args Args) Value {
	if args.IsKeyword() {
		return args.KW.FirstArg()
	}

	return args.Pos[0]
}

func iotaFromTo(args Args) (int64, Value, error) {
	if args.IsKeyword() {
		to, ok := args.KW.TryGet("to", true)
		if !ok {
			return 0, nil, Raise("invalid-iota-arg", args)
		}

		from, err := requireInt("iota", args.KW.FirstArg())
		if err != nil {
			return 0, nil, err
		}

		return from, to, nil
	}

	from, err := requireInt("iota", args.Pos[0])
	if err != nil {
		return 0, nil, err
	}

	return from, args.Pos[1], nil
}

func intRange(from, to int64) []Value {
	if to < from {
		to = from
	}

	out := make([]Value, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}

func requireInt(name string, v Value) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, Raise("invalid-iota-arg", name, v)
	}
}

func iterMapFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("iter.map", args, []string{"by"})
	if err != nil {
		return nil, err
	}

	src, by := vals[0], vals[1]

	it, err := iterFromValue("iter.map", src)
	if err != nil {
		return nil, err
	}

	return NewIterator(func() (Value, bool) {
		v, ok := it.Next()
		if !ok {
			return nil, false
		}

		r, err := ev.Apply(by, PosArgs(v), env)
		if err != nil {
			return nil, false
		}

		return r, true
	}), nil
}

func iterTakeFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("iter.take", args, []string{"from"})
	if err != nil {
		return nil, err
	}

	n, from := vals[0], vals[1]

	count, err := requireInt("iter.take", n)
	if err != nil {
		return nil, err
	}

	it, err := iterFromValue("iter.take", from)
	if err != nil {
		return nil, err
	}

	out := make([]Value, 0, count)

	for i := int64(0); i < count; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}

		out = append(out, v)
	}

	return NewSequence(out...), nil
}

func iterReduceFn(ev *Evaluator, env *Environment, args Args) (Value, error) {
	vals, err := unpackKwlist("iter.reduce", args, []string{"from", "by"})
	if err != nil {
		return nil, err
	}

	src, init, by := vals[0], vals[1], vals[2]

	it, err := iterFromValue("iter.reduce", src)
	if err != nil {
		return nil, err
	}

	acc := init

	for {
		v, ok := it.Next()
		if !ok {
			break
		}

		acc, err = ev.Apply(by, PosArgs(acc, v), env)
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

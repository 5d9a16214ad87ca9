package lang

import "math"

// registerArithmetic binds the binary arithmetic and comparison operators.
// Each is a Function of the shape (left, <keyword>: right); the keyword
// name varies per operator (`and` for add/eq/neq, `minus` for subtraction,
// `by` for the multiplicative operators, `to` for ordering comparisons).
func registerArithmetic(env *Environment) {
	binops := []struct {
		names   []string
		keyword string
		op      func(a, b Value) (Value, error)
	}{
		{[]string{"+", "add"}, "and", numAdd},
		{[]string{"-", "sub"}, "minus", numSub},
		{[]string{"*", "mul"}, "by", numMul},
		{[]string{"//", "floordiv"}, "by", numFloorDiv},
		{[]string{"/", "div"}, "by", numDiv},
		{[]string{"=", "eq"}, "and", eqOp},
		{[]string{"!=", "<>", "neq"}, "and", neqOp},
		{[]string{"compare"}, "to", compareOp},
		{[]string{"lt"}, "to", orderOp("lt")},
		{[]string{"gt"}, "to", orderOp("gt")},
		{[]string{"gte"}, "to", orderOp("gte")},
		{[]string{"lte"}, "to", orderOp("lte")},
		{[]string{"same"}, "to", eqOp},
	}

	for _, b := range binops {
		primary := b.names[0]
		keyword := b.keyword
		op := b.op

		impl := func(ev *Evaluator, env *Environment, args Args) (Value, error) {
			vals, err := unpackKwlist(primary, args, []string{keyword})
			if err != nil {
				return nil, err
			}

			return op(vals[0], vals[1])
		}

		for _, name := range b.names {
			env.Define(name, function(name, impl))
		}
	}
}

func numAdd(a, b Value) (Value, error) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return nil, Raise("invalid-args", "+", a, b)
		}

		return as + bs, nil
	}

	return numericBinop("+", a, b,
		func(x, y int64) Value { return x + y },
		func(x, y float64) Value { return x + y })
}

func numSub(a, b Value) (Value, error) {
	return numericBinop("-", a, b,
		func(x, y int64) Value { return x - y },
		func(x, y float64) Value { return x - y })
}

func numMul(a, b Value) (Value, error) {
	return numericBinop("*", a, b,
		func(x, y int64) Value { return x * y },
		func(x, y float64) Value { return x * y })
}

func numDiv(a, b Value) (Value, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)

	if !aok || !bok {
		return nil, Raise("invalid-args", "/", a, b)
	}

	return af / bf, nil
}

func numFloorDiv(a, b Value) (Value, error) {
	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)

	if aIsInt && bIsInt {
		q := ai / bi
		if (ai%bi != 0) && ((ai < 0) != (bi < 0)) {
			q--
		}

		return q, nil
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)

	if !aok || !bok {
		return nil, Raise("invalid-args", "//", a, b)
	}

	return math.Floor(af / bf), nil
}

// numericBinop dispatches to the int or float form of op, promoting to
// float64 if either operand is a float.
func numericBinop(name string, a, b Value, intOp func(x, y int64) Value, floatOp func(x, y float64) Value) (Value, error) {
	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)

	if aIsInt && bIsInt {
		return intOp(ai, bi), nil
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)

	if !aok || !bok {
		return nil, Raise("invalid-args", name, a, b)
	}

	return floatOp(af, bf), nil
}

func eqOp(a, b Value) (Value, error) {
	c, err := Compare(a, b)
	if err != nil {
		return nil, err
	}

	return c == "eq", nil
}

func neqOp(a, b Value) (Value, error) {
	c, err := Compare(a, b)
	if err != nil {
		return nil, err
	}

	return c != "eq", nil
}

func compareOp(a, b Value) (Value, error) {
	return Compare(a, b)
}

func orderOp(want string) func(a, b Value) (Value, error) {
	return func(a, b Value) (Value, error) {
		c, err := Compare(a, b)
		if err != nil {
			return nil, err
		}

		switch want {
		case "lt":
			return c == "lt", nil
		case "gt":
			return c == "gt", nil
		case "gte":
			return c == "gt" || c == "eq", nil
		case "lte":
			return c == "lt" || c == "eq", nil
		default:
			return nil, Raise("invalid-test-oper", want)
		}
	}
}

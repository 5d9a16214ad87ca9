package lang

import "sort"

// Compare returns a total order of a against b as one of "lt", "eq", "gt":
// sequences compare lexicographically by element then by length; mappings
// compare their sorted key lists then their values in sorted-key order;
// scalars compare via host ordering. Incomparable pairs raise
// invalid-compare.
func Compare(a, b Value) (string, error) {
	switch av := a.(type) {
	case *Sequence:
		return compareSequences(av, b)

	case *Mapping:
		return compareMappings(av, b)

	case nil:
		if b == nil {
			return "eq", nil
		}

		return "", Raise("invalid-compare", a, b)

	case bool:
		bv, ok := b.(bool)
		if !ok {
			return "", Raise("invalid-compare", a, b)
		}

		switch {
		case av == bv:
			return "eq", nil
		case !av && bv:
			return "lt", nil
		default:
			return "gt", nil
		}

	case int64, float64:
		return compareNumbers(av, b)

	case string:
		bv, ok := b.(string)
		if !ok {
			return "", Raise("invalid-compare", a, b)
		}

		return orderStrings(av, bv), nil

	default:
		return "", Raise("invalid-compare", a, b)
	}
}

func compareSequences(av *Sequence, b Value) (string, error) {
	bv, ok := b.(*Sequence)
	if !ok {
		return "", Raise("invalid-compare", av, b)
	}

	n := av.Len()
	if bv.Len() < n {
		n = bv.Len()
	}

	for i := range n {
		c, err := Compare(av.Items[i], bv.Items[i])
		if err != nil {
			return "", err
		}

		if c != "eq" {
			return c, nil
		}
	}

	switch {
	case av.Len() < bv.Len():
		return "lt", nil
	case av.Len() > bv.Len():
		return "gt", nil
	default:
		return "eq", nil
	}
}

func compareMappings(av *Mapping, b Value) (string, error) {
	bv, ok := b.(*Mapping)
	if !ok {
		return "", Raise("invalid-compare", av, b)
	}

	ak := append([]string{}, av.Keys()...)
	bk := append([]string{}, bv.Keys()...)
	sort.Strings(ak)
	sort.Strings(bk)

	c, err := compareSequences(stringsToSequence(ak), stringsToSequence(bk))
	if err != nil {
		return "", err
	}

	if c != "eq" {
		return c, nil
	}

	for _, k := range ak {
		va, _ := av.Get(k)
		vb, _ := bv.Get(k)

		c, err := Compare(va, vb)
		if err != nil {
			return "", err
		}

		if c != "eq" {
			return c, nil
		}
	}

	return "eq", nil
}

func stringsToSequence(ss []string) *Sequence {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = s
	}

	return NewSequence(items...)
}

func compareNumbers(a, b Value) (string, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)

	if !aok || !bok {
		return "", Raise("invalid-compare", a, b)
	}

	return orderFloats(af, bf), nil
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func orderFloats(a, b float64) string {
	switch {
	case a < b:
		return "lt"
	case a > b:
		return "gt"
	default:
		return "eq"
	}
}

func orderStrings(a, b string) string {
	switch {
	case a < b:
		return "lt"
	case a > b:
		return "gt"
	default:
		return "eq"
	}
}

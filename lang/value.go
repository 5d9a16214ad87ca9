package lang

// Value is any JSPR runtime value. It is constrained by convention to the
// closed set of concrete types this file and callable.go define: nil,
// bool, int64, float64, string, *Sequence, *Mapping, *KeywordSequence,
// *Environment, and the Callable implementations (*Function, *SpecialForm,
// *Closure, *Macro, *Module), plus the *Iterator that iter.go defines.
type Value = any

// Sequence is a finite, insertion-ordered list of Values.
type Sequence struct {
	Items []Value
}

// NewSequence builds a Sequence from the given items.
func NewSequence(items ...Value) *Sequence {
	return &Sequence{Items: items}
}

// Len returns the number of elements in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Items)
}

// Mapping is an insertion-ordered string-keyed dictionary of Values.
type Mapping struct {
	keys []string
	vals map[string]Value
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{vals: make(map[string]Value)}
}

// Set binds key to v, appending key to the insertion order the first time
// it is used and overwriting the value (without reordering) thereafter.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.vals[key] = v
}

// Get returns the value bound to key and whether it was present.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.vals[key]

	return v, ok
}

// Attr implements Attributer: plain mappings fall back to key indexing.
func (m *Mapping) Attr(name string) (Value, bool) {
	return m.Get(name)
}

// Keys returns the mapping's keys in insertion order.
func (m *Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of entries in the mapping.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Clone returns a shallow copy of the mapping with its own key/value storage.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	for _, k := range m.keys {
		c.Set(k, m.vals[k])
	}

	return c
}

// KVPair is one (key, value) entry of a KeywordSequence.
type KVPair struct {
	Key   string
	Value Value
}

// KeywordSequence is a call-form argument vector built from a sequence of
// single-entry mappings: an ordered list of (key, expression) pairs whose
// first pair encodes the callee's name and its first positional argument.
type KeywordSequence struct {
	Pairs []KVPair
}

// Len returns the number of pairs.
func (k *KeywordSequence) Len() int {
	if k == nil {
		return 0
	}

	return len(k.Pairs)
}

// FirstArg returns the value of the first pair (the first positional
// argument of the call this KeywordSequence encodes).
func (k *KeywordSequence) FirstArg() Value {
	return k.Pairs[0].Value
}

// FirstKey returns the key of the first pair (the callee's name).
func (k *KeywordSequence) FirstKey() string {
	return k.Pairs[0].Key
}

// TryGet searches for key among the pairs, optionally skipping the first
// pair (the callee/first-positional-argument slot).
func (k *KeywordSequence) TryGet(key string, ignoreFirst bool) (Value, bool) {
	pairs := k.Pairs
	if ignoreFirst && len(pairs) > 0 {
		pairs = pairs[1:]
	}

	for _, p := range pairs {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

// Keys returns the keys of every pair after the first.
func (k *KeywordSequence) Keys() []string {
	if k.Len() <= 1 {
		return nil
	}

	keys := make([]string, 0, len(k.Pairs)-1)
	for _, p := range k.Pairs[1:] {
		keys = append(keys, p.Key)
	}

	return keys
}

// Attributer is the dotted-path attribute-lookup protocol: a value exposing
// Attr supports `.name.sub` reference resolution beyond its first segment.
// *Environment, *Module, *Mapping, and *SpecialForm (through its Sub
// entries) implement it; anything else fails lookup with no-such-attr.
type Attributer interface {
	Attr(name string) (Value, bool)
}

// IsSequence reports whether v is a *Sequence (a string is an atom, not a
// sequence, even though it is also ordered and indexable).
func IsSequence(v Value) bool {
	_, ok := v.(*Sequence)

	return ok
}

// IsMapping reports whether v is a *Mapping.
func IsMapping(v Value) bool {
	_, ok := v.(*Mapping)

	return ok
}

// IsAtom reports whether v is null, boolean, integer, float, or string.
func IsAtom(v Value) bool {
	switch v.(type) {
	case nil, bool, int64, float64, string:
		return true
	default:
		return false
	}
}

// IsCallable reports whether v is a *Function, *SpecialForm, *Closure, or
// *Macro. A *Module is not reported as callable.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *Function, *SpecialForm, *Closure, *Macro:
		return true
	default:
		return false
	}
}

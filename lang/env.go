package lang

import "maps"

// Environment is a lexically-scoped name table with a parent link. Lookup
// searches the current frame then walks parents; define and let write only
// the current frame.
type Environment struct {
	names  map[string]Value
	parent *Environment
}

// NewEnvironment returns an empty root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{names: make(map[string]Value)}
}

// Define binds name to v in the current frame, overwriting any same-named
// binding in this frame; it never affects parent frames.
func (e *Environment) Define(name string, v Value) {
	e.names[name] = v
}

// Lookup searches the current frame then its parents, returning the
// binding and true, or (nil, false) if name is bound nowhere on the chain.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.names[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Attr implements Attributer by delegating to Lookup, so a bound
// *Environment value supports dotted-path attribute resolution like any
// other Attributer.
func (e *Environment) Attr(name string) (Value, bool) {
	return e.Lookup(name)
}

// NewChild returns an empty frame parented to e.
func (e *Environment) NewChild() *Environment {
	return &Environment{names: make(map[string]Value), parent: e}
}

// Clone returns a frame parented to e's parent whose table is a shallow
// copy of e's own table — the snapshot a Closure takes of its defining
// frame when it is created.
func (e *Environment) Clone() *Environment {
	return &Environment{names: maps.Clone(e.names), parent: e.parent}
}

// Parent returns e's parent frame, or nil for a root environment.
func (e *Environment) Parent() *Environment {
	return e.parent
}

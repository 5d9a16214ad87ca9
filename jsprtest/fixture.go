package jsprtest

import (
	"fmt"
	"os"

	"github.com/ardnew/jspr/docloader"
	"github.com/ardnew/jspr/lang"
)

// Case is one entry of a fixture's `cases` mapping.
type Case struct {
	Name string

	// Env carries the optional `env:` prelude bindings, evaluated and
	// defined in the case's fresh root environment before Code runs.
	Env *lang.Mapping

	// Code is evaluated as one expression against the prepared environment;
	// it is not wrapped in a do-sequence.
	Code lang.Value

	// Exactly one of HasExpect/HasRescue is true.
	HasExpect bool
	Expect    lang.Value
	HasRescue bool
	Rescue    lang.Value
}

// Fixture is a loaded test_*.yml file's ordered case list.
type Fixture struct {
	Path  string
	Cases []Case
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := docloader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("jsprtest: %s: %w", path, err)
	}

	root, ok := doc.(*lang.Mapping)
	if !ok {
		return nil, fmt.Errorf("jsprtest: %s: fixture root must be a mapping", path)
	}

	casesVal, ok := root.Get("cases")
	if !ok {
		return nil, fmt.Errorf("jsprtest: %s: missing top-level \"cases\"", path)
	}

	casesMap, ok := casesVal.(*lang.Mapping)
	if !ok {
		return nil, fmt.Errorf("jsprtest: %s: \"cases\" must be a mapping", path)
	}

	cases := make([]Case, 0, casesMap.Len())

	for _, name := range casesMap.Keys() {
		raw, _ := casesMap.Get(name)

		c, err := parseCase(name, raw)
		if err != nil {
			return nil, fmt.Errorf("jsprtest: %s: case %q: %w", path, name, err)
		}

		cases = append(cases, c)
	}

	return &Fixture{Path: path, Cases: cases}, nil
}

func parseCase(name string, raw lang.Value) (Case, error) {
	m, ok := raw.(*lang.Mapping)
	if !ok {
		return Case{}, fmt.Errorf("case body must be a mapping")
	}

	c := Case{Name: name}

	if envVal, ok := m.Get("env"); ok {
		envMap, ok := envVal.(*lang.Mapping)
		if !ok {
			return Case{}, fmt.Errorf("\"env\" must be a mapping")
		}

		c.Env = envMap
	}

	code, ok := m.Get("code")
	if !ok {
		return Case{}, fmt.Errorf("missing \"code\"")
	}

	c.Code = code

	expect, hasExpect := m.Get("expect")
	rescue, hasRescue := m.Get("rescue")

	switch {
	case hasExpect && hasRescue:
		return Case{}, fmt.Errorf("exactly one of \"expect\"/\"rescue\" must be present, found both")
	case hasExpect:
		c.HasExpect = true
		c.Expect = expect
	case hasRescue:
		c.HasRescue = true
		c.Rescue = rescue
	default:
		return Case{}, fmt.Errorf("exactly one of \"expect\"/\"rescue\" must be present, found neither")
	}

	return c, nil
}

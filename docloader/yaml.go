package docloader

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/ardnew/jspr/lang"
)

// loadYAML decodes the first document of a YAML byte stream into a
// lang.Value tree by walking goccy/go-yaml's low-level AST
// (parser.ParseBytes) instead of unmarshaling into map[string]any, which
// is unordered and would violate mapping-key-order preservation.
func loadYAML(data []byte) (lang.Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}

	if len(file.Docs) == 0 {
		return nil, nil
	}

	doc := file.Docs[0]
	if doc.Body == nil {
		return nil, nil
	}

	return yamlNodeToValue(doc.Body)
}

func yamlNodeToValue(n ast.Node) (lang.Value, error) {
	switch t := n.(type) {
	case *ast.MappingNode:
		m := lang.NewMapping()

		for _, mv := range t.Values {
			key, err := yamlScalarKey(mv.Key)
			if err != nil {
				return nil, err
			}

			val, err := yamlNodeToValue(mv.Value)
			if err != nil {
				return nil, err
			}

			m.Set(key, val)
		}

		return m, nil

	case *ast.MappingValueNode:
		m := lang.NewMapping()

		key, err := yamlScalarKey(t.Key)
		if err != nil {
			return nil, err
		}

		val, err := yamlNodeToValue(t.Value)
		if err != nil {
			return nil, err
		}

		m.Set(key, val)

		return m, nil

	case *ast.SequenceNode:
		items := make([]lang.Value, 0, len(t.Values))

		for _, v := range t.Values {
			val, err := yamlNodeToValue(v)
			if err != nil {
				return nil, err
			}

			items = append(items, val)
		}

		return lang.NewSequence(items...), nil

	case *ast.NullNode:
		return nil, nil

	case *ast.BoolNode:
		return t.Value, nil

	case *ast.IntegerNode:
		switch v := t.Value.(type) {
		case int64:
			return v, nil
		case uint64:
			return int64(v), nil
		default:
			return t.Value, nil
		}

	case *ast.FloatNode:
		return t.Value, nil

	case *ast.StringNode:
		return t.Value, nil

	case *ast.LiteralNode:
		return yamlNodeToValue(t.Value)

	default:
		return nil, fmt.Errorf("docloader: unsupported YAML node %T", n)
	}
}

// yamlScalarKey renders a mapping key node as a string: YAML permits
// non-string scalar keys, but JSPR's Mapping is string-keyed, so a numeric
// or boolean key is stringified the way its text would already read.
func yamlScalarKey(n ast.Node) (string, error) {
	v, err := yamlNodeToValue(n)
	if err != nil {
		return "", err
	}

	switch k := v.(type) {
	case string:
		return k, nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(k), nil
	default:
		return "", fmt.Errorf("docloader: unsupported mapping key type %T", v)
	}
}

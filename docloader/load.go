package docloader

import (
	"bytes"
	"io"

	"github.com/ardnew/jspr/lang"
)

// Load decodes data as JSON or YAML into a lang.Value tree, sniffing the
// format by its first non-whitespace byte: '{' or '[' selects the JSON
// decoder, anything else falls back to YAML (a superset that also accepts
// JSON, per goccy/go-yaml's own documented fallback, but decoded here via
// the order-preserving AST walk rather than yaml.Unmarshal).
func Load(data []byte) (lang.Value, error) {
	if looksLikeJSON(data) {
		return loadJSON(bytes.NewReader(data))
	}

	return loadYAML(data)
}

// LoadReader reads all of r and decodes it via Load.
func LoadReader(r io.Reader) (lang.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Load(data)
}

func looksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}

	return false
}

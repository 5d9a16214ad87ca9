package docloader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ardnew/jspr/lang"
)

// loadJSON decodes a single JSON document from r into a lang.Value tree,
// building *lang.Mapping/*lang.Sequence directly from the token stream
// (json.Decoder.Token) rather than through map[string]any, which would
// discard key order. Integer-valued numbers decode to int64; anything with
// a fractional or exponent part decodes to float64.
func loadJSON(r io.Reader) (lang.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (lang.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (lang.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("docloader: unexpected delimiter %q", t)
		}

	case json.Number:
		return jsonNumberToValue(t)

	case string, bool, nil:
		return t, nil

	default:
		return nil, fmt.Errorf("docloader: unexpected JSON token %T", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (lang.Value, error) {
	m := lang.NewMapping()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("docloader: object key is not a string (%T)", keyTok)
		}

		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		m.Set(key, val)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeJSONArray(dec *json.Decoder) (lang.Value, error) {
	items := make([]lang.Value, 0)

	for dec.More() {
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		items = append(items, val)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return lang.NewSequence(items...), nil
}

func jsonNumberToValue(n json.Number) (lang.Value, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}

	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("docloader: invalid number %q: %w", n.String(), err)
	}

	return f, nil
}

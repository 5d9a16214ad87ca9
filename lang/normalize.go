package lang

import "strings"

// NormalizeKey rewrites a mapping key bearing a trailing sigil into its
// canonical (name, expression) pair:
//
//  1. If key contains ':', split at the first ':' into head and tail,
//     recursively normalize (tail, value), and return (head, wrapped),
//     where wrapped is the single-entry mapping {normalizedTail:
//     normalizedValue}. The head's last character, if non-empty, must be
//     alphanumeric or '=', else invalid-key-suffix.
//  2. Else if key ends with "'", strip it and return (stripped,
//     ['quote', value]) — the value is quoted, not evaluated.
//  3. Else if key's last character is non-alphanumeric and not '=', fail
//     with invalid-key-suffix.
//  4. Else return (key, value) unchanged.
//
// Normalization is idempotent: normalizing an already-normalized pair
// returns it unchanged.
func NormalizeKey(key string, value Value) (string, Value, error) {
	if idx := strings.IndexByte(key, ':'); idx >= 0 {
		head, tail := key[:idx], key[idx+1:]

		if len(head) > 0 && !isValidSuffixChar(head[len(head)-1]) {
			return "", nil, Raise("invalid-key-suffix", head, value)
		}

		nkey, nval, err := NormalizeKey(tail, value)
		if err != nil {
			return "", nil, err
		}

		wrapped := NewMapping()
		wrapped.Set(nkey, nval)

		return head, wrapped, nil
	}

	if strings.HasSuffix(key, "'") {
		stripped := key[:len(key)-1]

		return stripped, NewSequence("quote", value), nil
	}

	if len(key) > 0 && !isValidSuffixChar(key[len(key)-1]) {
		return "", nil, Raise("invalid-key-suffix", key, value)
	}

	return key, value, nil
}

func isValidSuffixChar(b byte) bool {
	return isAlnum(b) || b == '='
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

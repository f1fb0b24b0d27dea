package keypath

import "strings"

// Parse splits a dot/bracket notation path into its keys, outermost first.
//
// Every bracket segment is rewritten to a dot segment, one leading dot is
// dropped and the result is split on dots. Parse never fails; malformed input
// such as "a..b" yields empty keys.
func Parse(path string) []string {
	normalized := strings.TrimPrefix(normalize(path), ".")

	return strings.Split(normalized, ".")
}

// normalize rewrites every [key], ['key'] and ["key"] segment to .key.
func normalize(path string) string {
	if strings.IndexByte(path, '[') == -1 {
		return path
	}

	var out strings.Builder

	out.Grow(len(path))

	for pos := 0; pos < len(path); {
		if path[pos] == '[' {
			key, end, ok := matchBracket(path, pos)
			if ok {
				out.WriteByte('.')
				out.WriteString(key)

				pos = end

				continue
			}
		}

		out.WriteByte(path[pos])
		pos++
	}

	return out.String()
}

// matchBracket matches the bracket segment opened at path[open]. It returns the
// key and the offset just past the closing bracket. A leading quote is taken
// as a delimiter when a matching close exists, otherwise it belongs to the key.
func matchBracket(path string, open int) (string, int, bool) {
	if open+1 < len(path) && isQuote(path[open+1]) {
		key, end, ok := matchBody(path, open+2, path[open+1])
		if ok {
			return key, end, true
		}
	}

	return matchBody(path, open+1, 0)
}

// matchBody finds the shortest non-empty body starting at start that is
// followed by quote+']' or by ']'.
func matchBody(path string, start int, quote byte) (string, int, bool) {
	for pos := start + 1; pos < len(path); pos++ {
		if path[pos-1] == '\x01' {
			return "", 0, false
		}

		if quote != 0 && path[pos] == quote && pos+1 < len(path) && path[pos+1] == ']' {
			return path[start:pos], pos + 2, true
		}

		if path[pos] == ']' {
			return path[start:pos], pos + 1, true
		}
	}

	return "", 0, false
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// Format renders keys in notation accepted by Parse. Numeric keys use index
// brackets and keys with notation characters use quoted brackets. Only keys
// free of '.', '[', ']' and quotes are guaranteed to survive a round trip.
func Format(keys []string) string {
	var out strings.Builder

	for i, key := range keys {
		switch {
		case isIndex(key):
			out.WriteString("[" + key + "]")
		case key == "" || strings.ContainsAny(key, ".[]'\""):
			quote := "'"
			if strings.Contains(key, "'") {
				quote = `"`
			}

			out.WriteString("[" + quote + key + quote + "]")
		default:
			if i > 0 {
				out.WriteByte('.')
			}

			out.WriteString(key)
		}
	}

	return out.String()
}

func isIndex(key string) bool {
	if key == "" {
		return false
	}

	for i := range len(key) {
		if key[i] < '0' || key[i] > '9' {
			return false
		}
	}

	return true
}

package tagstream

import (
	"fmt"
	"strings"
)

// ParseArguments extracts shallow <key>value</key> pairs from a resolved
// tool call body. Values are kept verbatim up to the first matching closing
// tag; the extractor does not recurse into them. Whitespace between elements
// is ignored; an empty body yields an empty map. If the same key appears more
// than once, the last occurrence wins.
//
// Unbalanced or stray markup — bare text between elements, an element that
// never closes, an orphaned closing tag — returns an error wrapping
// ErrMalformedBody. ParseArguments never panics on any input.
func ParseArguments(body string) (map[string]string, error) {
	args := make(map[string]string)
	rest := body
	for {
		i := strings.IndexByte(rest, '<')
		if i < 0 {
			if strings.TrimSpace(rest) != "" {
				return nil, fmt.Errorf("text outside argument elements: %w", ErrMalformedBody)
			}
			return args, nil
		}
		if strings.TrimSpace(rest[:i]) != "" {
			return nil, fmt.Errorf("text outside argument elements: %w", ErrMalformedBody)
		}
		rest = rest[i:]

		j := strings.IndexByte(rest, '>')
		if j < 0 {
			return nil, fmt.Errorf("unterminated element tag: %w", ErrMalformedBody)
		}
		key := rest[1:j]
		if key == "" || strings.ContainsAny(key, "</ \t\r\n") {
			return nil, fmt.Errorf("invalid element name %q: %w", key, ErrMalformedBody)
		}
		rest = rest[j+1:]

		closing := "</" + key + ">"
		k := strings.Index(rest, closing)
		if k < 0 {
			return nil, fmt.Errorf("element %q is never closed: %w", key, ErrMalformedBody)
		}
		args[key] = rest[:k]
		rest = rest[k+len(closing):]
	}
}

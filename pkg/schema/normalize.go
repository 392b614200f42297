package schema

import (
	"strings"

	"github.com/dmitrymomot/reqschema/pkg/sanitizer"
)

// Normalizer rewrites the raw input mapping before any field is checked.
// It must not fail; it only rewrites values. The mapping it receives is owned
// by the engine, so a normalizer may edit it in place and return it.
type Normalizer func(input map[string]any) map[string]any

// TrimText strips leading and trailing whitespace from every top-level string
// value and replaces strings that become empty with null. It always runs
// first and is idempotent.
func TrimText(input map[string]any) map[string]any {
	for k, v := range input {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if trimmed := sanitizer.Trim(s); trimmed != "" {
			input[k] = trimmed
		} else {
			input[k] = nil
		}
	}
	return input
}

// Alias moves the value of key from to key to, unless to is already present.
func Alias(from, to string) Normalizer {
	return func(input map[string]any) map[string]any {
		v, ok := input[from]
		if !ok {
			return input
		}
		delete(input, from)
		if _, exists := input[to]; !exists {
			input[to] = v
		}
		return input
	}
}

// SnakeCaseKeys accepts snake_case keys for camelCase field names
// (`per_page` becomes `perPage`). Keys already present in camelCase win.
func SnakeCaseKeys() Normalizer {
	return func(input map[string]any) map[string]any {
		for k, v := range input {
			if !strings.Contains(strings.Trim(k, "_"), "_") {
				continue
			}
			camel := sanitizer.ToCamelCase(k)
			delete(input, k)
			if _, exists := input[camel]; !exists {
				input[camel] = v
			}
		}
		return input
	}
}

// Transform applies fn to the string values of the named fields.
func Transform(fn func(string) string, fields ...string) Normalizer {
	return func(input map[string]any) map[string]any {
		for _, name := range fields {
			if s, ok := input[name].(string); ok {
				input[name] = fn(s)
			}
		}
		return input
	}
}

// UpperCase upper-cases the named text fields (e.g. region codes).
func UpperCase(fields ...string) Normalizer {
	return Transform(sanitizer.ToUpper, fields...)
}

// UnicodeNFC converts the named text fields to Unicode normalization form C.
func UnicodeNFC(fields ...string) Normalizer {
	return Transform(sanitizer.NormalizeUnicode, fields...)
}

// CollapseWhitespace squeezes internal whitespace runs in the named text fields.
func CollapseWhitespace(fields ...string) Normalizer {
	return Transform(sanitizer.CollapseWhitespace, fields...)
}

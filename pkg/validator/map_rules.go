package validator

import (
	"fmt"
	"strings"
)

func blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}

// RequiredKeys validates that a mapping holds a non-blank value for every key.
func RequiredKeys(keys ...string) Rule {
	missing := func(value any) []string {
		m, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		var out []string
		for _, k := range keys {
			if blank(m[k]) {
				out = append(out, k)
			}
		}
		return out
	}
	return Rule{
		Code:           CodeMissingRequired,
		TranslationKey: "validation.required_keys",
		Params:         map[string]any{"keys": keys},
		Check: func(value any) bool {
			return len(missing(value)) == 0
		},
		Message: func(value any) string {
			return fmt.Sprintf("missing required keys: %s", strings.Join(missing(value), ", "))
		},
	}
}

// NonBlankKeys rejects mappings that contain an empty or whitespace-only key.
func NonBlankKeys() Rule {
	return Rule{
		Code:           CodeInvalidValue,
		TranslationKey: "validation.blank_keys",
		DefaultMessage: "keys must not be blank",
		Check: func(value any) bool {
			m, ok := value.(map[string]any)
			if !ok {
				return true
			}
			for k := range m {
				if strings.TrimSpace(k) == "" {
					return false
				}
			}
			return true
		},
	}
}

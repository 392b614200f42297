package validator

import (
	"fmt"
	"unicode/utf8"
)

// sizeOf returns the length of text (in runes), sequences and mappings along
// with the unit used in messages.
func sizeOf(value any) (int, string, bool) {
	switch v := value.(type) {
	case string:
		return utf8.RuneCountInString(v), "characters", true
	case []any:
		return len(v), "items", true
	case map[string]any:
		return len(v), "keys", true
	default:
		return 0, "", false
	}
}

// MinLen validates that text, a sequence or a mapping has at least min elements.
func MinLen(min int) Rule {
	return Rule{
		Code:           CodeLengthViolation,
		TranslationKey: "validation.min_length",
		Params:         map[string]any{"min": min},
		Check: func(value any) bool {
			n, _, ok := sizeOf(value)
			return !ok || n >= min
		},
		Message: func(value any) string {
			_, unit, _ := sizeOf(value)
			return fmt.Sprintf("must be at least %d %s long", min, unit)
		},
	}
}

// MaxLen validates that text, a sequence or a mapping has at most max elements.
func MaxLen(max int) Rule {
	return Rule{
		Code:           CodeLengthViolation,
		TranslationKey: "validation.max_length",
		Params:         map[string]any{"max": max},
		Check: func(value any) bool {
			n, _, ok := sizeOf(value)
			return !ok || n <= max
		},
		Message: func(value any) string {
			_, unit, _ := sizeOf(value)
			return fmt.Sprintf("must be at most %d %s long", max, unit)
		},
	}
}

// LenBetween validates an inclusive length window.
func LenBetween(min, max int) Rule {
	if min > max {
		panic(fmt.Errorf("%w: LenBetween min %d > max %d", ErrInvalidRule, min, max))
	}
	return Rule{
		Code:           CodeLengthViolation,
		TranslationKey: "validation.length_between",
		Params:         map[string]any{"min": min, "max": max},
		Check: func(value any) bool {
			n, _, ok := sizeOf(value)
			return !ok || (n >= min && n <= max)
		},
		Message: func(value any) string {
			_, unit, _ := sizeOf(value)
			return fmt.Sprintf("must be between %d and %d %s long", min, max, unit)
		},
	}
}

// ExactLen validates that the length equals exact.
func ExactLen(exact int) Rule {
	return Rule{
		Code:           CodeLengthViolation,
		TranslationKey: "validation.exact_length",
		Params:         map[string]any{"length": exact},
		Check: func(value any) bool {
			n, _, ok := sizeOf(value)
			return !ok || n == exact
		},
		Message: func(value any) string {
			_, unit, _ := sizeOf(value)
			return fmt.Sprintf("must be exactly %d %s long", exact, unit)
		},
	}
}

// NotEmpty rejects empty text, sequences and mappings.
func NotEmpty() Rule {
	return Rule{
		Code:           CodeLengthViolation,
		TranslationKey: "validation.not_empty",
		DefaultMessage: "must not be empty",
		Check: func(value any) bool {
			n, _, ok := sizeOf(value)
			return !ok || n > 0
		},
	}
}

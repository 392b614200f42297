package validator

import (
	"fmt"
	"slices"
	"strings"
)

func oneOf[T comparable](allowed []T, listed bool) Rule {
	set := slices.Clone(allowed)
	params := map[string]any{}
	if listed {
		params["allowed_values"] = set
	}
	return Rule{
		Code:           CodeNotInAllowedSet,
		TranslationKey: "validation.in_list",
		Params:         params,
		Check: func(value any) bool {
			v, ok := value.(T)
			if !ok {
				return false
			}
			return slices.Contains(set, v)
		},
		Message: func(value any) string {
			if !listed {
				return fmt.Sprintf("%v is not an allowed value", value)
			}
			items := make([]string, 0, len(set))
			for _, a := range set {
				items = append(items, fmt.Sprint(a))
			}
			return fmt.Sprintf("%v is not an allowed value, must be one of: %s", value, strings.Join(items, ", "))
		},
	}
}

// OneOf validates membership in a fixed set. The error names the rejected
// value but not the allowed set.
func OneOf[T comparable](allowed ...T) Rule {
	return oneOf(allowed, false)
}

// OneOfListed is OneOf with the allowed set included in the error message.
func OneOfListed[T comparable](allowed ...T) Rule {
	return oneOf(allowed, true)
}

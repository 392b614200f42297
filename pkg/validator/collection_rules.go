package validator

import "fmt"

// MinItems is MinLen for sequences.
func MinItems(min int) Rule {
	r := MinLen(min)
	r.TranslationKey = "validation.min_items"
	return r
}

// MaxItems is MaxLen for sequences.
func MaxItems(max int) Rule {
	r := MaxLen(max)
	r.TranslationKey = "validation.max_items"
	return r
}

func itemKey(v any) any {
	switch x := v.(type) {
	case map[string]any, []any:
		return fmt.Sprint(x)
	case fmt.Stringer:
		return "str:" + x.String()
	default:
		return v
	}
}

func duplicates(items []any) []any {
	seen := make(map[any]bool, len(items))
	var dups []any
	for _, item := range items {
		k := itemKey(item)
		if reported, ok := seen[k]; ok {
			if !reported {
				dups = append(dups, item)
				seen[k] = true
			}
			continue
		}
		seen[k] = false
	}
	return dups
}

// UniqueItems rejects sequences containing the same value more than once.
func UniqueItems() Rule {
	return Rule{
		Code:           CodeDuplicateInSequence,
		TranslationKey: "validation.unique_items",
		Check: func(value any) bool {
			items, ok := value.([]any)
			return !ok || len(duplicates(items)) == 0
		},
		Message: func(value any) string {
			items, _ := value.([]any)
			return fmt.Sprintf("duplicate values are not allowed: %v", duplicates(items))
		},
	}
}

package schema

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// RequireWhen makes target required whenever trigger holds one of values.
// The target stays optional in its field declaration because it is irrelevant
// otherwise; a missing or null target is reported on the target field with
// validator.CodeConditionalRequirementUnmet.
func RequireWhen(trigger string, values []string, target string) ObjectRule {
	values = slices.Clone(values)
	return func(v Values) validator.ValidationErrors {
		selected, ok := v.Text(trigger)
		if !ok || !slices.Contains(values, selected) {
			return nil
		}
		if v[target] != nil {
			return nil
		}
		return validator.ValidationErrors{{
			Field:          target,
			Code:           validator.CodeConditionalRequirementUnmet,
			Message:        fmt.Sprintf("is required when %s is %s", trigger, selected),
			TranslationKey: "validation.required_if",
			TranslationValues: map[string]any{
				"field":   target,
				"trigger": trigger,
				"value":   selected,
			},
		}}
	}
}

// RangeOrder rejects a numeric pair whose lower bound exceeds its upper bound.
// The error is attributed to maxField.
func RangeOrder(minField, maxField string) ObjectRule {
	return func(v Values) validator.ValidationErrors {
		lo, okLo := numeric(v[minField])
		hi, okHi := numeric(v[maxField])
		if !okLo || !okHi || lo.LessThanOrEqual(hi) {
			return nil
		}
		return validator.ValidationErrors{{
			Field:          maxField,
			Code:           validator.CodeOutOfRange,
			Message:        fmt.Sprintf("must be greater than or equal to %s", minField),
			TranslationKey: "validation.range_order",
			TranslationValues: map[string]any{
				"field": maxField,
				"min":   minField,
			},
		}}
	}
}

func numeric(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), true
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Decimal{}, false
	}
}

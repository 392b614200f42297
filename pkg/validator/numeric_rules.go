package validator

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// toDecimal converts the numeric representations produced by normalization.
func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case int64:
		return decimal.NewFromInt(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Decimal{}, false
	}
}

func bound[T Numeric](v T) decimal.Decimal {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)
	case reflect.Float32:
		return decimal.NewFromFloat32(float32(rv.Float()))
	default:
		return decimal.NewFromFloat(rv.Float())
	}
}

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](min T) Rule {
	lo := bound(min)
	return Rule{
		Code:           CodeOutOfRange,
		TranslationKey: "validation.min",
		Params:         map[string]any{"min": lo.String()},
		DefaultMessage: fmt.Sprintf("must be at least %s", lo),
		Check: func(value any) bool {
			d, ok := toDecimal(value)
			return !ok || d.GreaterThanOrEqual(lo)
		},
	}
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](max T) Rule {
	hi := bound(max)
	return Rule{
		Code:           CodeOutOfRange,
		TranslationKey: "validation.max",
		Params:         map[string]any{"max": hi.String()},
		DefaultMessage: fmt.Sprintf("must be at most %s", hi),
		Check: func(value any) bool {
			d, ok := toDecimal(value)
			return !ok || d.LessThanOrEqual(hi)
		},
	}
}

// Between validates an inclusive numeric range.
func Between[T Numeric](min, max T) Rule {
	lo, hi := bound(min), bound(max)
	if lo.GreaterThan(hi) {
		panic(fmt.Errorf("%w: Between min %s > max %s", ErrInvalidRule, lo, hi))
	}
	return Rule{
		Code:           CodeOutOfRange,
		TranslationKey: "validation.between",
		Params:         map[string]any{"min": lo.String(), "max": hi.String()},
		DefaultMessage: fmt.Sprintf("must be between %s and %s", lo, hi),
		Check: func(value any) bool {
			d, ok := toDecimal(value)
			return !ok || (d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi))
		},
	}
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive() Rule {
	return Rule{
		Code:           CodeOutOfRange,
		TranslationKey: "validation.positive",
		DefaultMessage: "must be greater than zero",
		Check: func(value any) bool {
			d, ok := toDecimal(value)
			return !ok || d.IsPositive()
		},
	}
}

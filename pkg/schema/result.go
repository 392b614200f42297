package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Result is the outcome of one validation: either normalized Values or a
// non-empty, ordered list of errors.
type Result struct {
	Values Values
	Errors validator.ValidationErrors
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the errors as a Go error, or nil on success.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Errors
}

// Values is a normalized, field-valid mapping. Integers and references are
// int64, decimals are decimal.Decimal, timestamps are time.Time, mappings are
// map[string]any and sequences are []any.
type Values map[string]any

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// IsNull reports whether the field is present with an explicit null.
func (v Values) IsNull(name string) bool {
	val, ok := v[name]
	return ok && val == nil
}

func (v Values) Text(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

func (v Values) Int64(name string) (int64, bool) {
	n, ok := v[name].(int64)
	return n, ok
}

func (v Values) Bool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}

func (v Values) Decimal(name string) (decimal.Decimal, bool) {
	d, ok := v[name].(decimal.Decimal)
	return d, ok
}

func (v Values) Time(name string) (time.Time, bool) {
	t, ok := v[name].(time.Time)
	return t, ok
}

func (v Values) Map(name string) (map[string]any, bool) {
	m, ok := v[name].(map[string]any)
	return m, ok
}

func (v Values) Slice(name string) ([]any, bool) {
	s, ok := v[name].([]any)
	return s, ok
}

// Int64s returns a sequence of integers, failing if any element is not an int64.
func (v Values) Int64s(name string) ([]int64, bool) {
	items, ok := v.Slice(name)
	if !ok {
		return nil, false
	}
	out := make([]int64, len(items))
	for i, item := range items {
		n, ok := item.(int64)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

package schema

import (
	"net/url"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Validate checks raw against the schema.
//
// Field errors are collected exhaustively; object rules run only when every
// field passed. Keys not declared by the schema are dropped from the result.
// Validate never panics and never mutates raw.
func (s *Schema) Validate(raw any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(validator.ValidationError{
				Field:          validator.RootField,
				Code:           validator.CodeInvalidValue,
				Message:        "payload could not be validated",
				TranslationKey: "validation.internal",
			})
		}
	}()

	input, ok := toInput(raw)
	if !ok {
		return failure(validator.ValidationError{
			Field:          validator.RootField,
			Code:           validator.CodeInvalidPayloadShape,
			Message:        "payload must be an object mapping field names to values",
			TranslationKey: "validation.payload_shape",
		})
	}

	input = s.Normalize(input)

	values := make(Values, len(s.fields))
	var errs validator.ValidationErrors
	for _, f := range s.fields {
		rawValue, present := input[f.Name]
		v, keep, ferrs := f.evaluate(rawValue, present)
		if len(ferrs) > 0 {
			errs = append(errs, ferrs...)
			continue
		}
		if keep {
			values[f.Name] = v
		}
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	for _, rule := range s.rules {
		errs = append(errs, rule(values)...)
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	return Result{Values: values}
}

// Normalize runs TrimText followed by the schema's normalizers over a copy of input.
func (s *Schema) Normalize(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[k] = v
	}

	out = TrimText(out)
	for _, n := range s.normalizers {
		if next := n(out); next != nil {
			out = next
		}
	}
	return out
}

// Validate is a convenience wrapper around s.Validate.
func Validate(s *Schema, raw any) Result {
	return s.Validate(raw)
}

// toInput accepts decoded JSON objects, string maps and query strings.
func toInput(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		if v == nil {
			return nil, false
		}
		return v, true
	case Values:
		if v == nil {
			return nil, false
		}
		return map[string]any(v), true
	case map[string]string:
		if v == nil {
			return nil, false
		}
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true
	case url.Values:
		if v == nil {
			return nil, false
		}
		out := make(map[string]any, len(v))
		for k, vals := range v {
			switch len(vals) {
			case 0:
				out[k] = nil
			case 1:
				out[k] = vals[0]
			default:
				items := make([]any, len(vals))
				for i, s := range vals {
					items[i] = s
				}
				out[k] = items
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func failure(err validator.ValidationError) Result {
	return Result{Errors: validator.ValidationErrors{err}}
}

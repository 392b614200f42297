package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Scope controls which catalog variants a field takes part in.
type Scope uint8

const (
	// ScopeInput fields are accepted by create and update and appear in output.
	ScopeInput Scope = iota
	// ScopeUpdateOnly fields are accepted by update only (e.g. an active flag).
	ScopeUpdateOnly
	// ScopeOutputOnly fields are identity or derived values, never accepted as input.
	ScopeOutputOnly
	// ScopeWriteOnly fields are accepted as input but never serialized (e.g. credentials).
	ScopeWriteOnly
)

// CustomFunc is a field-specific predicate run after the built-in rules pass.
// Returning a validator.ValidationError keeps its code and message; any other
// error is reported with validator.CodeInvalidValue.
type CustomFunc func(value any) error

// Field is the declarative contract of one field.
type Field struct {
	Name       string
	Kind       Kind
	Required   bool
	Nullable   bool
	Default    any
	HasDefault bool
	Rules      []validator.Rule
	Custom     CustomFunc
	Items      *Field
	Scope      Scope
	Doc        string
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// Required marks the field as mandatory on input.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// Nullable accepts an explicit null.
func Nullable() FieldOption {
	return func(f *Field) { f.Nullable = true }
}

// Default is substituted when the field is absent. It is never applied to an explicit null.
func Default(v any) FieldOption {
	return func(f *Field) {
		f.Default = v
		f.HasDefault = true
	}
}

// Rules appends built-in constraints, evaluated in order.
func Rules(rules ...validator.Rule) FieldOption {
	return func(f *Field) { f.Rules = append(f.Rules, rules...) }
}

// Custom sets the custom validator.
func Custom(fn CustomFunc) FieldOption {
	return func(f *Field) { f.Custom = fn }
}

// UpdateOnly limits the field to the update variant.
func UpdateOnly() FieldOption {
	return func(f *Field) { f.Scope = ScopeUpdateOnly }
}

// OutputOnly excludes the field from every input variant.
func OutputOnly() FieldOption {
	return func(f *Field) { f.Scope = ScopeOutputOnly }
}

// WriteOnly accepts the field on input and keeps it out of output and echoes.
func WriteOnly() FieldOption {
	return func(f *Field) { f.Scope = ScopeWriteOnly }
}

// Doc attaches a description used by Describe.
func Doc(text string) FieldOption {
	return func(f *Field) { f.Doc = text }
}

// NewField builds a field of kind k.
func NewField(name string, k Kind, opts ...FieldOption) Field {
	f := Field{Name: name, Kind: k}
	if k == KindReference {
		f.Rules = append(f.Rules, referenceRule)
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

var referenceRule = func() validator.Rule {
	r := validator.Min(1)
	r.DefaultMessage = "must be a positive identifier"
	return r
}()

// Integer is a whole number, normalized to int64.
func Integer(name string, opts ...FieldOption) Field {
	return NewField(name, KindInteger, opts...)
}

// Decimal is an exact number, normalized to decimal.Decimal.
func Decimal(name string, opts ...FieldOption) Field {
	return NewField(name, KindDecimal, opts...)
}

// Text is a string. Surrounding whitespace is trimmed before rules run.
func Text(name string, opts ...FieldOption) Field {
	return NewField(name, KindText, opts...)
}

// Bool accepts JSON booleans and the usual query-string spellings.
func Bool(name string, opts ...FieldOption) Field {
	return NewField(name, KindBoolean, opts...)
}

// Timestamp is an RFC 3339 string, normalized to time.Time.
func Timestamp(name string, opts ...FieldOption) Field {
	return NewField(name, KindTimestamp, opts...)
}

// Mapping is an opaque object: only presence, size and sub-key rules apply.
func Mapping(name string, opts ...FieldOption) Field {
	return NewField(name, KindMapping, opts...)
}

// Reference is a foreign-key-shaped identifier (integer >= 1).
func Reference(name string, opts ...FieldOption) Field {
	return NewField(name, KindReference, opts...)
}

// Sequence is a list whose elements are checked against items.
func Sequence(name string, items Field, opts ...FieldOption) Field {
	f := NewField(name, KindSequence, opts...)
	f.Items = &items
	return f
}

// clone returns a copy that shares nothing mutable with f.
func (f Field) clone() Field {
	f.Rules = slices.Clone(f.Rules)
	if f.Items != nil {
		items := f.Items.clone()
		f.Items = &items
	}
	f.Default = cloneValue(f.Default)
	return f
}

// define checks the field declaration and normalizes its default.
func (f *Field) define() error {
	var errs []error
	if f.Name == "" {
		errs = append(errs, ErrEmptyFieldName)
	}
	if _, ok := kindNames[f.Kind]; !ok {
		errs = append(errs, fmt.Errorf("%w: field %q has kind %s", ErrUnknownKind, f.Name, f.Kind))
	}
	if f.Required && f.HasDefault {
		errs = append(errs, fmt.Errorf("%w: %q", ErrRequiredWithDefault, f.Name))
	}
	if f.HasDefault && f.Default != nil {
		v, verrs := f.check(f.Name, f.Default)
		if len(verrs) > 0 {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidDefault, f.Name, verrs))
		} else {
			f.Default = v
		}
	}
	if f.HasDefault && f.Default == nil && !f.Nullable {
		errs = append(errs, fmt.Errorf("%w: %q defaults to null but is not nullable", ErrInvalidDefault, f.Name))
	}
	if f.Items != nil && f.Kind != KindSequence {
		errs = append(errs, fmt.Errorf("%w: %q declares items but is not a sequence", ErrInvalidDefinition, f.Name))
	}
	return errors.Join(errs...)
}

// evaluate applies absence handling and then check.
// keep reports whether the field belongs in the output mapping.
func (f Field) evaluate(raw any, present bool) (value any, keep bool, errs validator.ValidationErrors) {
	if !present {
		switch {
		case f.Required:
			return nil, false, validator.ValidationErrors{{
				Field:          f.Name,
				Code:           validator.CodeMissingRequired,
				Message:        "field is required",
				TranslationKey: "validation.required",
			}}
		case f.HasDefault:
			return cloneValue(f.Default), true, nil
		default:
			return nil, false, nil
		}
	}

	v, errs := f.check(f.Name, raw)
	if len(errs) > 0 {
		return nil, false, errs
	}
	return v, true, nil
}

// check validates a present value, attributing errors to name.
func (f Field) check(name string, raw any) (any, validator.ValidationErrors) {
	if raw == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, validator.ValidationErrors{{
			Field:          name,
			Code:           validator.CodeMissingRequired,
			Message:        "must not be null",
			TranslationKey: "validation.not_null",
		}}
	}

	v, ok := coerce(f.Kind, raw)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:          name,
			Code:           validator.CodeInvalidType,
			Message:        f.Kind.typeMessage(),
			TranslationKey: "validation.invalid_type",
			TranslationValues: map[string]any{
				"field": name,
				"kind":  f.Kind.String(),
			},
		}}
	}

	var errs validator.ValidationErrors
	if items, isSeq := v.([]any); isSeq && f.Items != nil {
		for i, item := range items {
			iv, ierrs := f.Items.check(fmt.Sprintf("%s[%d]", name, i), item)
			if len(ierrs) > 0 {
				errs = append(errs, ierrs...)
				continue
			}
			items[i] = iv
		}
	}

	errs = append(errs, validator.Collect(name, v, f.Rules...)...)
	if len(errs) > 0 {
		return nil, errs
	}

	if f.Custom != nil {
		if verr := runCustom(f.Custom, name, v); verr != nil {
			return nil, validator.ValidationErrors{*verr}
		}
	}
	return v, nil
}

func runCustom(fn CustomFunc, name string, value any) (out *validator.ValidationError) {
	defer func() {
		if r := recover(); r != nil {
			out = &validator.ValidationError{
				Field:          name,
				Code:           validator.CodeInvalidValue,
				Message:        "value could not be validated",
				TranslationKey: "validation.custom_failed",
			}
		}
	}()

	err := fn(value)
	if err == nil {
		return nil
	}

	var verr validator.ValidationError
	if errors.As(err, &verr) {
		verr.Field = name
		if verr.Code == "" {
			verr.Code = validator.CodeInvalidValue
		}
		return &verr
	}
	return &validator.ValidationError{
		Field:          name,
		Code:           validator.CodeInvalidValue,
		Message:        err.Error(),
		TranslationKey: "validation.custom",
	}
}

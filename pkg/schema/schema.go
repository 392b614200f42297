package schema

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// ObjectRule is a whole-object validator. It runs only after every field
// passed, against the normalized values, and may report errors on
// validator.RootField or on named fields.
type ObjectRule func(values Values) validator.ValidationErrors

// Schema is a named, ordered set of fields plus object rules and normalizers.
// A Schema is immutable once built and safe for concurrent use.
type Schema struct {
	name        string
	fields      []Field
	index       map[string]int
	rules       []ObjectRule
	normalizers []Normalizer
}

// Option configures a Schema.
type Option func(*Schema)

// WithRules appends whole-object validators, run in declaration order.
func WithRules(rules ...ObjectRule) Option {
	return func(s *Schema) {
		for _, r := range rules {
			if r != nil {
				s.rules = append(s.rules, r)
			}
		}
	}
}

// WithNormalizers appends normalizers that run after TrimText in declaration order.
func WithNormalizers(normalizers ...Normalizer) Option {
	return func(s *Schema) {
		for _, n := range normalizers {
			if n != nil {
				s.normalizers = append(s.normalizers, n)
			}
		}
	}
}

// New builds a schema and rejects contradictory definitions: empty or
// duplicate field names, required fields with defaults and defaults that do
// not satisfy their own field.
func New(name string, fields []Field, opts ...Option) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	var errs []error
	for _, f := range fields {
		f = f.clone()
		if err := f.define(); err != nil {
			errs = append(errs, err)
		}
		if _, dup := s.index[f.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name))
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("schema %q: %w", name, err)
	}
	return s, nil
}

// MustNew is New for package-level schema definitions; it panics on error.
func MustNew(name string, fields []Field, opts ...Option) *Schema {
	s, err := New(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name, "<entity>.<variant>" for catalog variants.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the declared fields in order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.clone()
	}
	return out
}

// Field returns the declared field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i].clone(), true
}

// FieldNames returns the declared field names in order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Describe documents every field with its constraints, in declaration order.
func (s *Schema) Describe() []FieldDoc {
	return describeFields(s.fields)
}

// Redact returns a copy of v without the write-only fields, suitable for
// echoing a validated payload back to a client.
func (s *Schema) Redact(v Values) Values {
	out := make(Values, len(v))
	for name, val := range v {
		if i, ok := s.index[name]; ok && s.fields[i].Scope == ScopeWriteOnly {
			continue
		}
		out[name] = val
	}
	return out
}

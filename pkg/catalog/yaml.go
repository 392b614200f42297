package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// ErrInvalidFile is returned when a catalog file cannot be decoded or
// describes an invalid catalog.
var ErrInvalidFile = errors.New("invalid catalog file")

// File is the on-disk form of a set of catalogs.
//
//	catalogs:
//	  - entity: supplier
//	    fields:
//	      - name: name
//	        kind: text
//	        required: true
//	        rules:
//	          - {type: len_between, min: 1, max: 100}
//	          - {type: no_markup}
//	    duplicate_keys: [name]
//	    list:
//	      sortable: [name, createdAt]
type File struct {
	Catalogs []CatalogDef `yaml:"catalogs"`
}

type CatalogDef struct {
	Entity        string          `yaml:"entity"`
	Fields        []FieldDef      `yaml:"fields"`
	DuplicateKeys []string        `yaml:"duplicate_keys"`
	List          ListDef         `yaml:"list"`
	Bulk          *BulkDef        `yaml:"bulk"`
	Stats         []FieldDef      `yaml:"stats"`
	Normalizers   []NormalizerDef `yaml:"normalizers"`
}

// FieldDef declares one field. Default is decoded lazily so any scalar
// kind is accepted; a zero Kind means no default was declared.
type FieldDef struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Required bool      `yaml:"required"`
	Nullable bool      `yaml:"nullable"`
	Default  yaml.Node `yaml:"default"`
	Scope    string    `yaml:"scope"`
	Doc      string    `yaml:"doc"`
	Items    *FieldDef `yaml:"items"`
	Rules    []RuleDef `yaml:"rules"`
}

// RuleDef selects a built-in rule by Type. Only the parameters relevant to
// the type are read.
type RuleDef struct {
	Type        string   `yaml:"type"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
	Value       *float64 `yaml:"value"`
	Values      []string `yaml:"values"`
	Keys        []string `yaml:"keys"`
	Pattern     string   `yaml:"pattern"`
	Description string   `yaml:"description"`
	Chars       string   `yaml:"chars"`
}

type ListDef struct {
	Sortable     []string    `yaml:"sortable"`
	DefaultSort  string      `yaml:"default_sort"`
	SearchMaxLen int         `yaml:"search_max_len"`
	MaxPerPage   int         `yaml:"max_per_page"`
	Filters      []FieldDef  `yaml:"filters"`
	RangePairs   [][2]string `yaml:"range_pairs"`
}

type BulkDef struct {
	IDsField     string           `yaml:"ids_field"`
	MaxItems     int              `yaml:"max_items"`
	Actions      []string         `yaml:"actions"`
	Params       []FieldDef       `yaml:"params"`
	Conditionals []ConditionalDef `yaml:"conditionals"`
}

type ConditionalDef struct {
	Action string `yaml:"action"`
	Field  string `yaml:"field"`
}

type NormalizerDef struct {
	Type   string   `yaml:"type"`
	Fields []string `yaml:"fields"`
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
}

// LoadFile reads catalogs from a YAML file.
func LoadFile(path string) ([]schema.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return LoadYAML(bytes.NewReader(data))
}

// LoadYAML decodes catalogs from r. Unknown keys are rejected so typos in a
// rule parameter do not silently drop a constraint.
func LoadYAML(r io.Reader) ([]schema.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	out := make([]schema.Catalog, 0, len(f.Catalogs))
	var errs []error
	for _, def := range f.Catalogs {
		c, err := def.Catalog()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, c)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return out, nil
}

// Catalog converts the definition into a schema.Catalog.
func (d CatalogDef) Catalog() (schema.Catalog, error) {
	c := schema.Catalog{
		Entity:        d.Entity,
		DuplicateKeys: d.DuplicateKeys,
		List: schema.ListSpec{
			Sortable:     d.List.Sortable,
			DefaultSort:  d.List.DefaultSort,
			SearchMaxLen: d.List.SearchMaxLen,
			MaxPerPage:   d.List.MaxPerPage,
			RangePairs:   d.List.RangePairs,
		},
	}

	var errs []error
	convert := func(defs []FieldDef) []schema.Field {
		fields := make([]schema.Field, 0, len(defs))
		for _, fd := range defs {
			f, err := fd.Field()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			fields = append(fields, f)
		}
		return fields
	}

	c.Fields = convert(d.Fields)
	c.List.Filters = convert(d.List.Filters)
	c.Stats = convert(d.Stats)
	if d.Bulk != nil {
		c.Bulk = &schema.BulkSpec{
			IDsField: d.Bulk.IDsField,
			MaxItems: d.Bulk.MaxItems,
			Actions:  d.Bulk.Actions,
			Params:   convert(d.Bulk.Params),
		}
		for _, cd := range d.Bulk.Conditionals {
			c.Bulk.Conditionals = append(c.Bulk.Conditionals, schema.Conditional{Action: cd.Action, Field: cd.Field})
		}
	}

	c.Normalizers = normalizers()
	for _, nd := range d.Normalizers {
		n, err := nd.Normalizer()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.Normalizers = append(c.Normalizers, n)
	}

	if err := errors.Join(errs...); err != nil {
		return schema.Catalog{}, fmt.Errorf("catalog %q: %w", d.Entity, err)
	}
	return c, nil
}

// Field converts the definition into a schema.Field.
func (d FieldDef) Field() (schema.Field, error) {
	kind, err := schema.ParseKind(d.Kind)
	if err != nil {
		return schema.Field{}, fmt.Errorf("field %q: %w", d.Name, err)
	}

	var opts []schema.FieldOption
	if d.Required {
		opts = append(opts, schema.Required())
	}
	if d.Nullable {
		opts = append(opts, schema.Nullable())
	}
	if d.Default.Kind != 0 {
		var v any
		if err := d.Default.Decode(&v); err != nil {
			return schema.Field{}, fmt.Errorf("field %q default: %w", d.Name, err)
		}
		opts = append(opts, schema.Default(v))
	}
	switch d.Scope {
	case "", "input":
	case "update_only":
		opts = append(opts, schema.UpdateOnly())
	case "output_only":
		opts = append(opts, schema.OutputOnly())
	case "write_only":
		opts = append(opts, schema.WriteOnly())
	default:
		return schema.Field{}, fmt.Errorf("field %q: unknown scope %q", d.Name, d.Scope)
	}
	if d.Doc != "" {
		opts = append(opts, schema.Doc(d.Doc))
	}

	for _, rd := range d.Rules {
		rule, err := rd.Rule()
		if err != nil {
			return schema.Field{}, fmt.Errorf("field %q: %w", d.Name, err)
		}
		opts = append(opts, schema.Rules(rule))
	}

	if kind == schema.KindSequence {
		if d.Items == nil {
			return schema.Field{}, fmt.Errorf("field %q: sequence without items", d.Name)
		}
		items := *d.Items
		if items.Name == "" {
			items.Name = d.Name
		}
		itemField, err := items.Field()
		if err != nil {
			return schema.Field{}, err
		}
		return schema.Sequence(d.Name, itemField, opts...), nil
	}
	return schema.NewField(d.Name, kind, opts...), nil
}

// Rule resolves the definition into a validator.Rule.
func (d RuleDef) Rule() (rule validator.Rule, err error) {
	// bound constructors panic on inverted ranges
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %q: %v", d.Type, r)
		}
	}()

	need := func(p *float64, name string) (float64, error) {
		if p == nil {
			return 0, fmt.Errorf("rule %q requires %q", d.Type, name)
		}
		return *p, nil
	}

	switch d.Type {
	case "min_len", "max_len", "exact_len", "min", "max":
		v, err := need(d.Value, "value")
		if err != nil {
			return validator.Rule{}, err
		}
		switch d.Type {
		case "min_len":
			return validator.MinLen(int(v)), nil
		case "max_len":
			return validator.MaxLen(int(v)), nil
		case "exact_len":
			return validator.ExactLen(int(v)), nil
		case "min":
			return validator.Min(v), nil
		default:
			return validator.Max(v), nil
		}
	case "len_between", "between":
		lo, err := need(d.Min, "min")
		if err != nil {
			return validator.Rule{}, err
		}
		hi, err := need(d.Max, "max")
		if err != nil {
			return validator.Rule{}, err
		}
		if d.Type == "len_between" {
			return validator.LenBetween(int(lo), int(hi)), nil
		}
		return validator.Between(lo, hi), nil
	case "not_empty":
		return validator.NotEmpty(), nil
	case "positive":
		return validator.Positive(), nil
	case "one_of":
		if len(d.Values) == 0 {
			return validator.Rule{}, fmt.Errorf("rule %q requires values", d.Type)
		}
		return validator.OneOfListed(d.Values...), nil
	case "pattern":
		if d.Pattern == "" {
			return validator.Rule{}, fmt.Errorf("rule %q requires pattern", d.Type)
		}
		desc := d.Description
		if desc == "" {
			desc = d.Pattern
		}
		return validator.MatchesPattern(d.Pattern, desc), nil
	case "alpha":
		return validator.Alpha(), nil
	case "alnum_separators":
		return validator.AlnumWithSeparators(), nil
	case "no_markup":
		return validator.NoMarkup(), nil
	case "deny_chars":
		return validator.DenyChars(d.Chars), nil
	case "unique_items":
		return validator.UniqueItems(), nil
	case "url":
		return validator.URL(), nil
	case "email":
		return validator.Email(), nil
	case "required_keys":
		return validator.RequiredKeys(d.Keys...), nil
	default:
		return validator.Rule{}, fmt.Errorf("unknown rule type %q", d.Type)
	}
}

// Normalizer resolves the definition into a schema.Normalizer.
func (d NormalizerDef) Normalizer() (schema.Normalizer, error) {
	switch d.Type {
	case "upper_case":
		return schema.UpperCase(d.Fields...), nil
	case "unicode_nfc":
		return schema.UnicodeNFC(d.Fields...), nil
	case "collapse_whitespace":
		return schema.CollapseWhitespace(d.Fields...), nil
	case "alias":
		if d.From == "" || d.To == "" {
			return nil, errors.New("normalizer alias requires from and to")
		}
		return schema.Alias(d.From, d.To), nil
	default:
		return nil, fmt.Errorf("unknown normalizer type %q", d.Type)
	}
}

package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Variant names a request or response shape derived from a catalog.
type Variant string

const (
	VariantCreate         Variant = "create"
	VariantUpdate         Variant = "update"
	VariantList           Variant = "list"
	VariantDuplicateCheck Variant = "duplicate_check"
	VariantBulkAction     Variant = "bulk_action"
	VariantStats          Variant = "stats"
	VariantOutput         Variant = "output"
)

// ExcludeIDField names the record ignored by its own duplicate check.
const ExcludeIDField = "excludeId"

const (
	DefaultBulkIDsField = "ids"
	DefaultBulkMaxItems = 100
	FieldAction         = "action"
)

// Catalog is the canonical field list of one entity. Every variant is derived
// from it, so a constraint is declared exactly once.
type Catalog struct {
	Entity        string
	Fields        []Field
	DuplicateKeys []string
	List          ListSpec
	Bulk          *BulkSpec
	Stats         []Field
	Normalizers   []Normalizer
	// Rules are whole-object validators applied to create and update.
	Rules []ObjectRule
}

// BulkSpec describes the bulk-action request of an entity.
type BulkSpec struct {
	IDsField     string
	MaxItems     int
	Actions      []string
	Params       []Field
	Conditionals []Conditional
}

// Conditional makes Field required when the selected action is Action.
type Conditional struct {
	Action string
	Field  string
}

// Variants holds every shape derived from one catalog.
type Variants struct {
	Entity         string
	Create         *Schema
	Update         *Schema
	List           *Schema
	DuplicateCheck *Schema
	BulkAction     *Schema
	Output         Shape
	Stats          Shape
}

// Schema returns the input schema for variant.
func (v *Variants) Schema(variant Variant) (*Schema, bool) {
	var s *Schema
	switch variant {
	case VariantCreate:
		s = v.Create
	case VariantUpdate:
		s = v.Update
	case VariantList:
		s = v.List
	case VariantDuplicateCheck:
		s = v.DuplicateCheck
	case VariantBulkAction:
		s = v.BulkAction
	}
	return s, s != nil
}

// Shape returns the output contract for variant.
func (v *Variants) Shape(variant Variant) (Shape, bool) {
	switch variant {
	case VariantOutput:
		return v.Output, true
	case VariantStats:
		return v.Stats, true
	default:
		return Shape{}, false
	}
}

// InputVariants lists the variants that validate inbound payloads.
func (v *Variants) InputVariants() []Variant {
	out := []Variant{VariantCreate, VariantUpdate, VariantList}
	if v.DuplicateCheck != nil {
		out = append(out, VariantDuplicateCheck)
	}
	if v.BulkAction != nil {
		out = append(out, VariantBulkAction)
	}
	return out
}

// Build derives every variant and reports all definition errors at once.
func (c Catalog) Build() (*Variants, error) {
	if c.Entity == "" {
		return nil, fmt.Errorf("%w: catalog without entity name", ErrInvalidDefinition)
	}

	v := &Variants{Entity: c.Entity}
	var errs []error
	collect := func(s *Schema, err error) *Schema {
		if err != nil {
			errs = append(errs, err)
		}
		return s
	}

	v.Create = collect(c.CreateVariant())
	v.Update = collect(c.UpdateVariant())
	v.List = collect(c.ListVariant())
	if len(c.DuplicateKeys) > 0 {
		v.DuplicateCheck = collect(c.DuplicateCheckVariant())
	}
	if c.Bulk != nil {
		v.BulkAction = collect(c.BulkActionVariant())
	}
	v.Output = c.OutputShape()
	v.Stats = c.StatsShape()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", c.Entity, err)
	}
	return v, nil
}

// MustBuild is Build for process start; it panics on error.
func (c Catalog) MustBuild() *Variants {
	v, err := c.Build()
	if err != nil {
		panic(err)
	}
	return v
}

func (c Catalog) variantName(variant Variant) string {
	return c.Entity + "." + string(variant)
}

func (c Catalog) options() []Option {
	return []Option{WithNormalizers(c.Normalizers...)}
}

// inputFields returns clones of the fields accepted by variant.
func (c Catalog) inputFields(update bool) []Field {
	var out []Field
	for _, f := range c.Fields {
		switch f.Scope {
		case ScopeOutputOnly:
			continue
		case ScopeUpdateOnly:
			if !update {
				continue
			}
		}
		out = append(out, f.clone())
	}
	return out
}

// CreateVariant accepts every input field with its declared requiredness.
func (c Catalog) CreateVariant() (*Schema, error) {
	return New(c.variantName(VariantCreate), c.inputFields(false),
		append(c.options(), WithRules(c.Rules...))...)
}

// UpdateVariant makes every field optional and drops defaults: absence means
// "leave unchanged", explicit null on a nullable field means "clear it".
func (c Catalog) UpdateVariant() (*Schema, error) {
	fields := c.inputFields(true)
	for i := range fields {
		fields[i].Required = false
		fields[i].HasDefault = false
		fields[i].Default = nil
	}
	return New(c.variantName(VariantUpdate), fields,
		append(c.options(), WithRules(c.Rules...))...)
}

// ListVariant builds the list/filter query contract.
func (c Catalog) ListVariant() (*Schema, error) {
	return ListQuery(c.variantName(VariantList), c.List, c.options()...)
}

// DuplicateCheckVariant keeps the natural-key fields with their create
// requiredness and constraints, and adds an optional excludeId.
func (c Catalog) DuplicateCheckVariant() (*Schema, error) {
	byName := make(map[string]Field, len(c.Fields))
	for _, f := range c.inputFields(false) {
		byName[f.Name] = f
	}

	var (
		fields []Field
		errs   []error
	)
	for _, name := range c.DuplicateKeys {
		f, ok := byName[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: duplicate key %q", ErrUnknownField, name))
			continue
		}
		f.HasDefault = false
		f.Default = nil
		fields = append(fields, f)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	fields = append(fields, Reference(ExcludeIDField, Nullable(),
		Doc("identifier of the record being updated, ignored by the check")))
	return New(c.variantName(VariantDuplicateCheck), fields, c.options()...)
}

// BulkActionVariant builds the ids + action request and wires one
// RequireWhen rule per conditional parameter.
func (c Catalog) BulkActionVariant() (*Schema, error) {
	b := c.Bulk
	if b == nil {
		return nil, fmt.Errorf("%w: %q has no bulk actions", ErrInvalidDefinition, c.Entity)
	}
	if len(b.Actions) == 0 {
		return nil, fmt.Errorf("%w: %q bulk spec lists no actions", ErrInvalidDefinition, c.Entity)
	}

	idsField := b.IDsField
	if idsField == "" {
		idsField = DefaultBulkIDsField
	}
	maxItems := b.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultBulkMaxItems
	}

	fields := []Field{
		Sequence(idsField, Reference("id"), Required(), Rules(
			validator.MinItems(1),
			validator.MaxItems(maxItems),
			validator.UniqueItems(),
		)),
		Text(FieldAction, Required(), Rules(validator.OneOf(b.Actions...))),
	}
	for _, p := range b.Params {
		p = p.clone()
		p.Required = false
		fields = append(fields, p)
	}

	var (
		rules []ObjectRule
		errs  []error
	)
	for _, cond := range b.Conditionals {
		if !slices.Contains(b.Actions, cond.Action) {
			errs = append(errs, fmt.Errorf("%w: conditional action %q", ErrInvalidDefinition, cond.Action))
		}
		if !slices.ContainsFunc(b.Params, func(f Field) bool { return f.Name == cond.Field }) {
			errs = append(errs, fmt.Errorf("%w: conditional field %q", ErrUnknownField, cond.Field))
		}
		rules = append(rules, RequireWhen(FieldAction, []string{cond.Action}, cond.Field))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return New(c.variantName(VariantBulkAction), fields,
		append(c.options(), WithRules(rules...))...)
}

// OutputShape lists every serialized field: input, update-only and
// output-only fields, excluding write-only ones.
func (c Catalog) OutputShape() Shape {
	s := Shape{Name: c.variantName(VariantOutput)}
	for _, f := range c.Fields {
		if f.Scope == ScopeWriteOnly {
			continue
		}
		s.Fields = append(s.Fields, f.clone())
	}
	return s
}

// StatsShape documents the derived aggregate fields.
func (c Catalog) StatsShape() Shape {
	s := Shape{Name: c.variantName(VariantStats)}
	for _, f := range c.Stats {
		s.Fields = append(s.Fields, f.clone())
	}
	return s
}

package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Names of the fields every list query carries.
const (
	FieldPage      = "page"
	FieldPerPage   = "perPage"
	FieldSearch    = "search"
	FieldSortBy    = "sortBy"
	FieldSortOrder = "sortOrder"
)

const (
	DefaultPerPage      = 20
	DefaultMaxPerPage   = 100
	DefaultSearchMaxLen = 100
)

// ListSpec holds the entity-specific part of a list/filter query.
// Sortable is fixed at definition time and never derived from requests.
type ListSpec struct {
	Sortable     []string
	DefaultSort  string
	SearchMaxLen int
	MaxPerPage   int
	Filters      []Field
	RangePairs   [][2]string
}

// ListQuery builds the pagination, search, sort and filter schema.
// Filters are always optional. DefaultSort falls back to the first sortable field.
func ListQuery(name string, spec ListSpec, opts ...Option) (*Schema, error) {
	if len(spec.Sortable) == 0 {
		return nil, fmt.Errorf("%w: list %q has no sortable fields", ErrInvalidDefinition, name)
	}
	sortable := slices.Clone(spec.Sortable)
	if spec.DefaultSort == "" {
		spec.DefaultSort = sortable[0]
	}
	if !slices.Contains(sortable, spec.DefaultSort) {
		return nil, fmt.Errorf("%w: list %q default %q", ErrInvalidSortDefault, name, spec.DefaultSort)
	}
	if spec.SearchMaxLen <= 0 {
		spec.SearchMaxLen = DefaultSearchMaxLen
	}
	if spec.MaxPerPage <= 0 {
		spec.MaxPerPage = DefaultMaxPerPage
	}

	fields := []Field{
		Integer(FieldPage, Default(1), Rules(validator.Min(1))),
		Integer(FieldPerPage, Default(min(DefaultPerPage, spec.MaxPerPage)), Rules(validator.Between(1, spec.MaxPerPage))),
		Text(FieldSearch, Nullable(), Rules(validator.MaxLen(spec.SearchMaxLen))),
		Text(FieldSortBy, Default(spec.DefaultSort), Rules(validator.OneOf(sortable...))),
		Text(FieldSortOrder, Default("asc"), Rules(validator.OneOf("asc", "desc"))),
	}

	for _, f := range spec.Filters {
		f = f.clone()
		f.Required = false
		fields = append(fields, f)
	}

	var errs []error
	for _, pair := range spec.RangePairs {
		for _, name := range pair {
			if !slices.ContainsFunc(fields, func(f Field) bool { return f.Name == name }) {
				errs = append(errs, fmt.Errorf("%w: range pair field %q", ErrUnknownField, name))
			}
		}
		opts = append(opts, WithRules(RangeOrder(pair[0], pair[1])))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("list %q: %w", name, err)
	}

	return New(name, fields, opts...)
}

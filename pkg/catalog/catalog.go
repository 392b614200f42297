// Package catalog declares the field catalogs of the invoicing back office
// entities and loads additional catalogs from YAML.
//
// Every catalog accepts the legacy snake_case payload keys (`per_page`,
// `category_id`) as well as camelCase, and legacy snake_case sort values.
package catalog

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/reqschema/pkg/sanitizer"
	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Entity names.
const (
	EntityCategory      = "category"
	EntitySubcategory   = "subcategory"
	EntityMinicategory  = "minicategory"
	EntityPropertyType  = "property_type"
	EntityPropertyUnit  = "property_unit"
	EntityScraperAccess = "scraper_access"
)

// Bulk actions shared by every entity.
const (
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
	ActionDelete     = "delete"
)

const (
	nameMaxLen        = 100
	descriptionMaxLen = 255
	codeMaxLen        = 20
	taxonomyBulkMax   = 50
)

// All returns the built-in catalogs in a stable order.
func All() []schema.Catalog {
	return []schema.Catalog{
		Category(),
		Subcategory(),
		Minicategory(),
		PropertyType(),
		PropertyUnit(),
		ScraperAccess(),
	}
}

// Build derives the variants of every catalog and joins all definition errors.
func Build(catalogs ...schema.Catalog) ([]*schema.Variants, error) {
	out := make([]*schema.Variants, 0, len(catalogs))
	var errs []error
	for _, c := range catalogs {
		v, err := c.Build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, v)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// Registry builds every built-in catalog plus extra and returns a registry serving them.
func Registry(extra ...schema.Catalog) (*schema.Registry, error) {
	sets, err := Build(append(All(), extra...)...)
	if err != nil {
		return nil, err
	}
	return schema.NewRegistry(sets...)
}

// Load builds the built-in catalogs plus those declared in the YAML file at
// path. An empty path yields the built-ins only. The result feeds
// schema.NewRegistry or Registry.Swap.
func Load(path string) ([]*schema.Variants, error) {
	catalogs := All()
	if path != "" {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, extra...)
	}
	return Build(catalogs...)
}

// normalizers returns the pipeline shared by every catalog. nfcFields are
// free-text names compared for duplicates, so they are brought to NFC.
func normalizers(nfcFields ...string) []schema.Normalizer {
	return []schema.Normalizer{
		schema.SnakeCaseKeys(),
		schema.Transform(legacySortValue, schema.FieldSortBy),
		schema.UnicodeNFC(nfcFields...),
	}
}

// legacySortValue maps snake_case sort values (`created_at`) to field names.
// Values with leading or trailing underscores are left for the allowed-set check.
func legacySortValue(s string) string {
	if strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") {
		return s
	}
	return sanitizer.ToCamelCase(s)
}

func nameField(name string, minLen int, opts ...schema.FieldOption) schema.Field {
	opts = append([]schema.FieldOption{
		schema.Required(),
		schema.Rules(
			validator.LenBetween(minLen, nameMaxLen),
			validator.NoMarkup(),
		),
	}, opts...)
	return schema.Text(name, opts...)
}

func descriptionField(maxLen int) schema.Field {
	opts := []schema.FieldOption{schema.Nullable()}
	if maxLen > 0 {
		opts = append(opts, schema.Rules(validator.MaxLen(maxLen)))
	}
	return schema.Text("description", opts...)
}

func codeField(minLen int) schema.Field {
	return schema.Text("code", schema.Nullable(), schema.Rules(
		validator.LenBetween(minLen, codeMaxLen),
		validator.AlnumWithSeparators(validator.DefaultSeparators...),
	))
}

// recordFields are the identity and audit fields every entity serializes.
func recordFields() []schema.Field {
	return []schema.Field{
		schema.Reference("id", schema.OutputOnly()),
		schema.Bool("isActive", schema.UpdateOnly()),
		schema.Timestamp("createdAt", schema.OutputOnly()),
		schema.Timestamp("updatedAt", schema.OutputOnly()),
	}
}

func withRecord(fields ...schema.Field) []schema.Field {
	rec := recordFields()
	out := make([]schema.Field, 0, len(fields)+len(rec))
	out = append(out, rec[0])
	out = append(out, fields...)
	return append(out, rec[1:]...)
}

func counter(name string) schema.Field {
	return schema.Integer(name, schema.OutputOnly())
}

func activeFilter(nullable bool) schema.Field {
	if nullable {
		return schema.Bool("isActive", schema.Nullable(), schema.Default(true))
	}
	return schema.Bool("isActive", schema.Default(true))
}

func flagFilter(name string) schema.Field {
	return schema.Bool(name, schema.Nullable())
}

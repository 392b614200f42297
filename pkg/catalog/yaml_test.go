package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/catalog"
	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	catalogs, err := catalog.LoadFile("testdata/supplier.yaml")
	require.NoError(t, err)
	require.Len(t, catalogs, 1)

	reg, err := catalog.Registry(catalogs...)
	require.NoError(t, err)
	assert.Contains(t, reg.Entities(), "supplier")

	v, err := reg.Variants("supplier")
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		res := v.Create.Validate(map[string]any{
			"denominazione": "Acme Srl",
			"vat_number":    "it12345678901",
			"tags":          []any{"energy", "north"},
		})
		require.True(t, res.Valid(), res.Errors)
		assert.Equal(t, "Acme Srl", res.Values["name"])
		assert.Equal(t, "IT12345678901", res.Values["vatNumber"])
		assert.Equal(t, int64(30), res.Values["paymentDays"])
	})

	t.Run("rules from file", func(t *testing.T) {
		t.Parallel()
		res := v.Create.Validate(map[string]any{
			"name":        "Acme",
			"email":       "not-an-email",
			"paymentDays": 400,
			"tags":        []any{"a", "a", strings.Repeat("x", 21)},
		})
		assert.True(t, res.Errors.HasCode("email", validator.CodePatternMismatch))
		assert.True(t, res.Errors.HasCode("paymentDays", validator.CodeOutOfRange))
		assert.True(t, res.Errors.HasCode("tags", validator.CodeDuplicateInSequence))
		assert.True(t, res.Errors.HasCode("tags[2]", validator.CodeLengthViolation))
	})

	t.Run("bulk conditional", func(t *testing.T) {
		t.Parallel()
		res := v.BulkAction.Validate(map[string]any{"ids": []any{1, 2}, "action": "merge"})
		assert.True(t, res.Errors.HasCode("targetSupplierId", validator.CodeConditionalRequirementUnmet))
	})

	t.Run("list range", func(t *testing.T) {
		t.Parallel()
		res := v.List.Validate(map[string]any{"minPaymentDays": 60, "maxPaymentDays": 30})
		assert.True(t, res.Errors.HasCode("maxPaymentDays", validator.CodeOutOfRange))
	})

	t.Run("describe", func(t *testing.T) {
		t.Parallel()
		docs := v.Create.Describe()
		require.NotEmpty(t, docs)
		assert.Equal(t, "name", docs[0].Name)
		assert.Equal(t, "legal name", docs[0].Doc)
		assert.Equal(t, []string{"totalSuppliers"}, v.Stats.FieldNames())
	})
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "catalogs:\n  - entity: x\n    feilds: []\n"},
		{"unknown kind", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: blob}\n"},
		{"unknown rule", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: text, rules: [{type: shout}]}\n"},
		{"missing rule param", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: text, rules: [{type: max_len}]}\n"},
		{"inverted range", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: integer, rules: [{type: between, min: 5, max: 1}]}\n"},
		{"bad pattern", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: text, rules: [{type: pattern, pattern: '('}]}\n"},
		{"unknown scope", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: text, scope: hidden}\n"},
		{"sequence without items", "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: sequence}\n"},
		{"unknown normalizer", "catalogs:\n  - entity: x\n    normalizers: [{type: rot13}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.LoadYAML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, catalog.ErrInvalidFile)
		})
	}
}

func TestLoadYAMLEmpty(t *testing.T) {
	t.Parallel()

	catalogs, err := catalog.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, catalogs)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := catalog.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRegistryRejectsDuplicateEntity(t *testing.T) {
	t.Parallel()

	_, err := catalog.Registry(catalog.Category())
	assert.ErrorIs(t, err, schema.ErrDuplicateEntity)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	builtin, err := catalog.Load("")
	require.NoError(t, err)
	assert.Len(t, builtin, len(catalog.All()))

	withFile, err := catalog.Load("testdata/supplier.yaml")
	require.NoError(t, err)
	assert.Len(t, withFile, len(catalog.All())+1)

	reg, err := schema.NewRegistry(builtin...)
	require.NoError(t, err)
	require.NoError(t, reg.Swap(withFile...))
	assert.Contains(t, reg.Entities(), "supplier")

	_, err = catalog.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoadYAMLDefaults(t *testing.T) {
	t.Parallel()

	doc := `catalogs:
  - entity: invoice_profile
    fields:
      - {name: paymentDays, kind: integer, default: 30}
      - {name: discount, kind: decimal, default: 12.5}
      - {name: sendReminders, kind: boolean, default: true}
      - {name: frequency, kind: text, default: daily}
      - {name: note, kind: text, nullable: true, default: null}
    list:
      sortable: [frequency]
`
	catalogs, err := catalog.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, catalogs, 1)

	v, err := catalogs[0].Build()
	require.NoError(t, err)

	res := v.Create.Validate(map[string]any{})
	require.True(t, res.Valid(), res.Errors)
	assert.Equal(t, int64(30), res.Values["paymentDays"])
	d, ok := res.Values["discount"].(decimal.Decimal)
	require.True(t, ok, "discount is %T", res.Values["discount"])
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, true, res.Values["sendReminders"])
	assert.Equal(t, "daily", res.Values["frequency"])
	assert.Contains(t, res.Values, "note")
	assert.Nil(t, res.Values["note"])
}

func TestLoadYAMLInvalidDefault(t *testing.T) {
	t.Parallel()

	doc := "catalogs:\n  - entity: x\n    fields:\n      - {name: a, kind: integer, default: soon}\n    list: {sortable: [a]}\n"
	catalogs, err := catalog.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = catalogs[0].Build()
	assert.ErrorIs(t, err, schema.ErrInvalidDefault)
}

func TestLoadYAMLLegacySortValue(t *testing.T) {
	t.Parallel()

	catalogs, err := catalog.LoadFile("testdata/supplier.yaml")
	require.NoError(t, err)
	v, err := catalogs[0].Build()
	require.NoError(t, err)

	res := v.List.Validate(map[string]any{"sort_by": "payment_days"})
	require.True(t, res.Valid(), res.Errors)
	assert.Equal(t, "paymentDays", res.Values["sortBy"])
}

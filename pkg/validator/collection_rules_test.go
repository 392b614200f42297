package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func TestUniqueItems(t *testing.T) {
	t.Parallel()

	t.Run("accepts distinct values", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply("ids", []any{int64(1), int64(2), int64(3)}, validator.UniqueItems()))
	})

	t.Run("reports duplicates once", func(t *testing.T) {
		t.Parallel()
		verr, ok := validator.UniqueItems().Validate("ids", []any{int64(1), int64(2), int64(2), int64(2)})
		require.False(t, ok)
		assert.Equal(t, validator.CodeDuplicateInSequence, verr.Code)
		assert.Equal(t, "duplicate values are not allowed: [2]", verr.Message)
	})

	t.Run("compares decimals by value", func(t *testing.T) {
		t.Parallel()
		items := []any{decimal.RequireFromString("1.5"), decimal.RequireFromString("1.5")}
		assert.Error(t, validator.Apply("values", items, validator.UniqueItems()))
	})

	t.Run("handles nested values", func(t *testing.T) {
		t.Parallel()
		items := []any{map[string]any{"a": 1}, map[string]any{"a": 1}}
		assert.Error(t, validator.Apply("values", items, validator.UniqueItems()))
	})
}

func TestItemBounds(t *testing.T) {
	t.Parallel()

	ids := make([]any, 0, 51)
	for i := range 51 {
		ids = append(ids, int64(i+1))
	}
	verr, ok := validator.MaxItems(50).Validate("ids", ids)
	require.False(t, ok)
	assert.Equal(t, "validation.max_items", verr.TranslationKey)
	assert.Error(t, validator.Apply("ids", []any{}, validator.MinItems(1)))
}

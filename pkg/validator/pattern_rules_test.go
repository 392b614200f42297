package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	postal := validator.MatchesPattern(`^\d{5}$`, "postal code")
	assert.NoError(t, validator.Apply("postalCode", "20121", postal))

	verr, ok := postal.Validate("postalCode", "2012")
	require.False(t, ok)
	assert.Equal(t, validator.CodePatternMismatch, verr.Code)
	assert.Equal(t, "must match postal code pattern", verr.Message)

	assert.Panics(t, func() { validator.MatchesPattern("(", "broken") })
}

func TestAlpha(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply("province", "MI", validator.Alpha()))
	assert.Error(t, validator.Apply("province", "M1", validator.Alpha()))
	assert.Error(t, validator.Apply("province", "", validator.Alpha()))
}

func TestAlnumWithSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"ENE-01", true},
		{"gas_02", true},
		{"Città1", true},
		{"--", false},
		{"A B", false},
		{"x.y", false},
	}

	rule := validator.AlnumWithSeparators()
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			_, ok := rule.Validate("code", tt.value)
			assert.Equal(t, tt.valid, ok)
		})
	}

	_, ok := validator.AlnumWithSeparators('.').Validate("code", "x.y")
	assert.True(t, ok)
}

func TestNoMarkup(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"<b>x</b>", "a & b", `say "hi"`, "l'acqua"} {
		verr, ok := validator.NoMarkup().Validate("name", v)
		require.False(t, ok, v)
		assert.Equal(t, validator.CodeForbiddenCharacters, verr.Code)
	}
	assert.NoError(t, validator.Apply("name", "Energia", validator.NoMarkup()))
	assert.Error(t, validator.Apply("name", "a;b", validator.DenyChars(";")))
}

package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range []schema.Kind{
		schema.KindInteger, schema.KindDecimal, schema.KindText, schema.KindBoolean,
		schema.KindTimestamp, schema.KindMapping, schema.KindSequence, schema.KindReference,
	} {
		parsed, err := schema.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := schema.ParseKind("blob")
	assert.ErrorIs(t, err, schema.ErrUnknownKind)
}

func TestKindCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field schema.Field
		raw   any
		want  any
		ok    bool
	}{
		{"integer from json number", schema.Integer("v"), json.Number("12"), int64(12), true},
		{"integer from string", schema.Integer("v"), "7", int64(7), true},
		{"integer from integral float", schema.Integer("v"), 3.0, int64(3), true},
		{"integer rejects fraction", schema.Integer("v"), 3.5, nil, false},
		{"integer rejects bool", schema.Integer("v"), true, nil, false},
		{"boolean from string", schema.Bool("v"), "yes", true, true},
		{"boolean from zero", schema.Bool("v"), 0, false, true},
		{"boolean rejects word", schema.Bool("v"), "maybe", nil, false},
		{"text rejects number", schema.Text("v"), 12, nil, false},
		{"timestamp from date", schema.Timestamp("v"), "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"mapping rejects list", schema.Mapping("v"), []any{}, nil, false},
		{"reference rejects zero", schema.Reference("v"), 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := schema.MustNew("k", []schema.Field{tt.field})
			res := s.Validate(map[string]any{"v": tt.raw})
			if !tt.ok {
				assert.False(t, res.Valid())
				return
			}
			require.True(t, res.Valid(), res.Errors)
			assert.Equal(t, tt.want, res.Values["v"])
		})
	}
}

func TestFieldDefinitionErrors(t *testing.T) {
	t.Parallel()

	_, err := schema.New("x", []schema.Field{schema.Text("")})
	assert.ErrorIs(t, err, schema.ErrEmptyFieldName)

	_, err = schema.New("x", []schema.Field{schema.Text("a"), schema.Text("a")})
	assert.ErrorIs(t, err, schema.ErrDuplicateField)

	_, err = schema.New("x", []schema.Field{schema.Integer("a", schema.Default("ten"))})
	assert.ErrorIs(t, err, schema.ErrInvalidDefault)

	_, err = schema.New("x", []schema.Field{schema.Integer("a", schema.Default(nil))})
	assert.ErrorIs(t, err, schema.ErrInvalidDefault)

	_, err = schema.New("x", []schema.Field{schema.Integer("a", schema.Default(0), schema.Rules(validator.Min(1)))})
	assert.ErrorIs(t, err, schema.ErrInvalidDefault)
}

func TestDefaultIsNotShared(t *testing.T) {
	t.Parallel()

	s := schema.MustNew("d", []schema.Field{schema.Mapping("opts", schema.Default(map[string]any{"a": 1}))})
	first := s.Validate(map[string]any{})
	m, ok := first.Values.Map("opts")
	require.True(t, ok)
	m["a"] = 2

	second := s.Validate(map[string]any{})
	assert.Equal(t, map[string]any{"a": 1}, second.Values["opts"])
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	s := schema.MustNew("d", []schema.Field{
		schema.Text("name", schema.Required(), schema.Rules(validator.LenBetween(1, 10)), schema.Doc("display name")),
		schema.Integer("page", schema.Default(1)),
	})
	docs := s.Describe()
	require.Len(t, docs, 2)
	assert.Equal(t, "name", docs[0].Name)
	assert.Equal(t, "text", docs[0].Kind)
	assert.True(t, docs[0].Required)
	assert.Equal(t, "display name", docs[0].Doc)
	require.Len(t, docs[0].Constraints, 1)
	assert.Equal(t, string(validator.CodeLengthViolation), docs[0].Constraints[0].Code)
	assert.Equal(t, int64(1), docs[1].Default)
}

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/reqschema/pkg/schema"
)

func TestTrimText(t *testing.T) {
	t.Parallel()

	in := map[string]any{"a": "  x ", "b": "   ", "c": 3, "d": []any{" y "}}
	out := schema.TrimText(in)
	assert.Equal(t, map[string]any{"a": "x", "b": nil, "c": 3, "d": []any{" y "}}, out)
	assert.Equal(t, out, schema.TrimText(out))
}

func TestNormalizers(t *testing.T) {
	t.Parallel()

	t.Run("snake case keys", func(t *testing.T) {
		t.Parallel()
		out := schema.SnakeCaseKeys()(map[string]any{"per_page": 5, "category_ids": "1,2", "name": "x"})
		assert.Equal(t, map[string]any{"perPage": 5, "categoryIds": "1,2", "name": "x"}, out)
	})

	t.Run("camel case wins", func(t *testing.T) {
		t.Parallel()
		out := schema.SnakeCaseKeys()(map[string]any{"per_page": 5, "perPage": 10})
		assert.Equal(t, map[string]any{"perPage": 10}, out)
	})

	t.Run("alias", func(t *testing.T) {
		t.Parallel()
		out := schema.Alias("q", "search")(map[string]any{"q": "roma"})
		assert.Equal(t, map[string]any{"search": "roma"}, out)
	})

	t.Run("upper case", func(t *testing.T) {
		t.Parallel()
		out := schema.UpperCase("province")(map[string]any{"province": "rm", "city": "roma"})
		assert.Equal(t, map[string]any{"province": "RM", "city": "roma"}, out)
	})

	t.Run("unicode nfc", func(t *testing.T) {
		t.Parallel()
		out := schema.UnicodeNFC("city")(map[string]any{"city": "Città"})
		assert.Equal(t, "Città", out["city"])
	})

	t.Run("collapse whitespace", func(t *testing.T) {
		t.Parallel()
		out := schema.CollapseWhitespace("name")(map[string]any{"name": "Via  Roma\t 1"})
		assert.Equal(t, "Via Roma 1", out["name"])
	})
}

func TestSchemaNormalizersRunAfterTrim(t *testing.T) {
	t.Parallel()

	s := schema.MustNew("n", []schema.Field{schema.Text("province")},
		schema.WithNormalizers(schema.UpperCase("province")))
	res := s.Validate(map[string]any{"province": " rm "})
	assert.Equal(t, "RM", res.Values["province"])
}

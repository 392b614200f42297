package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/reqschema/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  mi  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToUpper,
			},
			expected: "MI",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.CollapseWhitespace,
		sanitizer.ToLower,
	)

	inputs := map[string]string{
		"  HELLO    WORLD  ": "hello world",
		"Energia\t\tVerde":   "energia verde",
		"":                   "",
	}
	for in, want := range inputs {
		assert.Equal(t, want, clean(in), in)
	}
}

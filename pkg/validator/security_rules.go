package validator

import (
	"fmt"
	"strings"
)

// MarkupChars are the characters significant to HTML markup.
const MarkupChars = `<>&"'`

// DenyChars rejects text containing any of chars.
func DenyChars(chars string) Rule {
	return Rule{
		Code:           CodeForbiddenCharacters,
		TranslationKey: "validation.forbidden_characters",
		Params:         map[string]any{"characters": chars},
		DefaultMessage: fmt.Sprintf("must not contain any of %s", chars),
		Check: func(value any) bool {
			s, ok := value.(string)
			return !ok || !strings.ContainsAny(s, chars)
		},
	}
}

// NoMarkup rejects text containing HTML-significant characters.
func NoMarkup() Rule {
	r := DenyChars(MarkupChars)
	r.DefaultMessage = "must not contain HTML special characters"
	return r
}

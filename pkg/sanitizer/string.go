package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeUnicode converts a string to Unicode normalization form C so that
// visually identical names ("è" vs "e" + combining grave) compare equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars drops control characters other than newline, carriage return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// ToCamelCase converts a string to camelCase. Non-alphanumeric characters start
// new words, with the first word lowercased and subsequent words capitalized.
func ToCamelCase(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	newWord := false
	first := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			switch {
			case first:
				b.WriteRune(unicode.ToLower(r))
				first = false
			case newWord:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(r)
			}
			newWord = false
			continue
		}
		if !first {
			newWord = true
		}
	}

	return b.String()
}

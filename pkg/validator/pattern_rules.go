package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Matches validates text against a compiled pattern.
func Matches(re *regexp.Regexp, description string) Rule {
	return Rule{
		Code:           CodePatternMismatch,
		TranslationKey: "validation.regex_pattern",
		Params:         map[string]any{"pattern": re.String(), "description": description},
		DefaultMessage: fmt.Sprintf("must match %s pattern", description),
		Check: func(value any) bool {
			s, ok := value.(string)
			return !ok || re.MatchString(s)
		},
	}
}

// MatchesPattern compiles pattern once at definition time and panics if it is invalid.
func MatchesPattern(pattern, description string) Rule {
	return Matches(regexp.MustCompile(pattern), description)
}

// Alpha validates that text consists of letters only.
func Alpha() Rule {
	return Rule{
		Code:           CodePatternMismatch,
		TranslationKey: "validation.alpha",
		DefaultMessage: "must contain only letters",
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return true
			}
			if s == "" {
				return false
			}
			for _, r := range s {
				if !unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
	}
}

// DefaultSeparators are stripped by AlnumWithSeparators when none are given.
var DefaultSeparators = []rune{'_', '-'}

// AlnumWithSeparators validates that text, once the separator runes are
// removed, is a non-empty run of letters and digits.
func AlnumWithSeparators(separators ...rune) Rule {
	if len(separators) == 0 {
		separators = DefaultSeparators
	}
	seps := string(separators)
	return Rule{
		Code:           CodePatternMismatch,
		TranslationKey: "validation.alnum_separators",
		Params:         map[string]any{"separators": seps},
		DefaultMessage: fmt.Sprintf("may contain only letters, digits and %s", strings.Join(strings.Split(seps, ""), " ")),
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return true
			}
			stripped := strings.Map(func(r rune) rune {
				if strings.ContainsRune(seps, r) {
					return -1
				}
				return r
			}, s)
			if stripped == "" {
				return false
			}
			for _, r := range stripped {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
	}
}

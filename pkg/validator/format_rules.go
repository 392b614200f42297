package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// format is safe for concurrent use and holds no per-request state.
var format = playground.New()

func formatRule(tag string, code Code, key, msg string) Rule {
	return Rule{
		Code:           code,
		TranslationKey: key,
		DefaultMessage: msg,
		Check: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return true
			}
			return format.Var(s, tag) == nil
		},
	}
}

// URL validates an absolute http or https URL.
func URL() Rule {
	return formatRule("http_url", CodePatternMismatch, "validation.url", "must be a valid http or https URL")
}

// Email validates an e-mail address.
func Email() Rule {
	return formatRule("email", CodePatternMismatch, "validation.email", "must be a valid email address")
}

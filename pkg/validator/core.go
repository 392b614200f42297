package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string         `json:"field"`
	Code              Code           `json:"code"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any error for field carries code.
func (ve ValidationErrors) HasCode(field string, code Code) bool {
	for _, err := range ve {
		if err.Field == field && err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single check over a normalized field value.
// Message may be nil, in which case DefaultMessage is reported.
type Rule struct {
	Code           Code
	TranslationKey string
	Params         map[string]any
	DefaultMessage string
	Check          func(value any) bool
	Message        func(value any) string
}

// Validate runs the rule against value and returns the failure attributed to field.
func (r Rule) Validate(field string, value any) (ValidationError, bool) {
	if r.Check == nil || r.Check(value) {
		return ValidationError{}, true
	}

	msg := r.DefaultMessage
	if r.Message != nil {
		msg = r.Message(value)
	}

	values := make(map[string]any, len(r.Params)+1)
	for k, v := range r.Params {
		values[k] = v
	}
	values["field"] = field

	return ValidationError{
		Field:             field,
		Code:              r.Code,
		Message:           msg,
		TranslationKey:    r.TranslationKey,
		TranslationValues: values,
	}, false
}

// Collect evaluates every rule against value and returns all failures in rule order.
func Collect(field string, value any, rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if verr, ok := rule.Validate(field, value); !ok {
			errs.Add(verr)
		}
	}
	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(field string, value any, rules ...Rule) error {
	errs := Collect(field, value, rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A lone ValidationError is promoted to a one-element slice.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

package validator

import "errors"

// Code is the machine-readable kind of a validation failure.
type Code string

// Error taxonomy shared by every schema.
const (
	CodeMissingRequired             Code = "missing_required"
	CodeInvalidType                 Code = "invalid_type"
	CodeOutOfRange                  Code = "out_of_range"
	CodeLengthViolation             Code = "length_violation"
	CodePatternMismatch             Code = "pattern_mismatch"
	CodeNotInAllowedSet             Code = "not_in_allowed_set"
	CodeForbiddenCharacters         Code = "forbidden_characters"
	CodeDuplicateInSequence         Code = "duplicate_in_sequence"
	CodeConditionalRequirementUnmet Code = "conditional_requirement_unmet"
	CodeInvalidPayloadShape         Code = "invalid_payload_shape"

	// CodeInvalidValue is reported for custom validator rejections that do not
	// carry a more specific code.
	CodeInvalidValue Code = "invalid_value"
)

// RootField is the field name used for errors that concern the whole object.
const RootField = "__root__"

// ErrInvalidRule is returned when a rule is built from inconsistent arguments.
var ErrInvalidRule = errors.New("invalid rule definition")

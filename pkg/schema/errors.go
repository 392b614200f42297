package schema

import "errors"

// Definition errors, returned while schemas are assembled at process start.
var (
	ErrEmptyFieldName      = errors.New("field name is empty")
	ErrDuplicateField      = errors.New("duplicate field name")
	ErrRequiredWithDefault = errors.New("required field declares a default value")
	ErrInvalidDefault      = errors.New("default value does not satisfy the field kind")
	ErrUnknownField        = errors.New("unknown field")
	ErrInvalidSortDefault  = errors.New("default sort field is not sortable")
	ErrInvalidDefinition   = errors.New("invalid schema definition")
	ErrUnknownKind         = errors.New("unknown value kind")
)

// Lookup errors, returned by the Registry.
var (
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrUnknownVariant  = errors.New("unknown schema variant")
	ErrDuplicateEntity = errors.New("entity registered twice")
)

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data   any                        `json:"data,omitempty"`
	Errors validator.ValidationErrors `json:"errors,omitempty"`
	Error  *ErrorDetail               `json:"error,omitempty"`
}

// ErrorDetail describes a request-level failure that is not tied to a field.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) error {
	return writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: message}})
}

// validationStatus maps a rejected payload to its status: 400 when the
// payload was not an object at all, 422 otherwise.
func validationStatus(errs validator.ValidationErrors) int {
	for _, e := range errs {
		if e.Code == validator.CodeInvalidPayloadShape {
			return http.StatusBadRequest
		}
	}
	return http.StatusUnprocessableEntity
}

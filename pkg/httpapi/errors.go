package httpapi

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type, expected application/json")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrMalformedJSON        = errors.New("malformed JSON body")
	ErrNotObject            = errors.New("payload must be a JSON object")
)

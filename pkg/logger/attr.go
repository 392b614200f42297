package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Entity records the validated entity name under the key "entity".
func Entity(name string) slog.Attr {
	return slog.String("entity", name)
}

// Variant records the schema variant under the key "variant".
func Variant(name string) slog.Attr {
	return slog.String("variant", name)
}

// ErrorCount records how many validation errors a payload produced.
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Fields records the names of the rejected fields under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

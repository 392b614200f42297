package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context. Returning
// false or an empty Attr adds nothing.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler adds request-scoped attributes, such as the request id, to
// every record handled with a context that carries them. An attribute passed
// at the call site wins over an extracted one with the same key.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are dropped; without any
// extractor the handler passes records through unchanged.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	h := &ContextHandler{next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	return h
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if extra := h.extract(ctx, rec); len(extra) > 0 {
		rec = rec.Clone()
		rec.AddAttrs(extra...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) extract(ctx context.Context, rec slog.Record) []slog.Attr {
	if ctx == nil || len(h.extractors) == 0 {
		return nil
	}
	var extra []slog.Attr
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || attr.Equal(slog.Attr{}) || hasKey(rec, attr.Key) {
			continue
		}
		extra = append(extra, attr)
	}
	return extra
}

func hasKey(rec slog.Record, key string) bool {
	found := false
	rec.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

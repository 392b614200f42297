package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/reqschema/pkg/httpserver"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// DefaultMaxBodyBytes limits JSON bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// API exposes a schema registry over HTTP. It never persists anything: a
// valid payload is echoed back normalized, without its write-only fields.
type API struct {
	registry *schema.Registry
	log      *slog.Logger
	maxBody  int64
}

type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMaxBodyBytes limits the accepted JSON body size. Non-positive values
// keep DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBody = n
		}
	}
}

func New(registry *schema.Registry, opts ...Option) *API {
	a := &API{
		registry: registry,
		log:      logger.Discard(),
		maxBody:  DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Routes returns the HTTP handler:
//
//	GET  /health                   readiness, fails while no entity is registered
//	GET  /v1/schemas               registered entity names
//	GET  /v1/schemas/{entity}      field documentation of every variant
//	GET  /v1/{entity}              list query validated from the query string
//	POST /v1/{entity}/{variant}    JSON body validated against the variant
//	POST /v1/{entity}/output       JSON object projected onto the output shape
//	POST /v1/{entity}/stats        JSON object projected onto the stats shape
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(a.log, a.ready))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/schemas", a.listEntities)
		r.Get("/schemas/{entity}", a.describeEntity)
		r.Get("/{entity}", a.validateQuery)
		r.Post("/{entity}/{variant}", a.validateBody)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		_ = writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		_ = writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

func (a *API) ready(context.Context) error {
	if len(a.registry.Entities()) == 0 {
		return errors.New("no entity catalogs registered")
	}
	return nil
}

func (a *API) listEntities(w http.ResponseWriter, _ *http.Request) {
	_ = writeJSON(w, http.StatusOK, Envelope{Data: a.registry.Entities()})
}

// EntityDoc documents every variant of one entity.
type EntityDoc struct {
	Entity   string                       `json:"entity" yaml:"entity"`
	Variants map[string][]schema.FieldDoc `json:"variants" yaml:"variants"`
}

func (a *API) describeEntity(w http.ResponseWriter, r *http.Request) {
	v, err := a.registry.Variants(chi.URLParam(r, "entity"))
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, Envelope{Data: DescribeVariants(v)})
}

// DescribeVariants collects the field documentation of every input schema and
// output shape of v.
func DescribeVariants(v *schema.Variants) EntityDoc {
	doc := EntityDoc{Entity: v.Entity, Variants: make(map[string][]schema.FieldDoc)}
	for _, variant := range v.InputVariants() {
		s, _ := v.Schema(variant)
		doc.Variants[string(variant)] = s.Describe()
	}
	for _, variant := range []schema.Variant{schema.VariantOutput, schema.VariantStats} {
		if shape, ok := v.Shape(variant); ok && len(shape.Fields) > 0 {
			doc.Variants[string(variant)] = shape.Describe()
		}
	}
	return doc
}

func (a *API) validateQuery(w http.ResponseWriter, r *http.Request) {
	a.validate(w, r, chi.URLParam(r, "entity"), schema.VariantList, r.URL.Query())
}

func (a *API) validateBody(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeJSON(w, r, a.maxBody)
	if err != nil {
		a.decodeFailed(w, r, err)
		return
	}
	entity, variant := chi.URLParam(r, "entity"), ParseVariant(chi.URLParam(r, "variant"))
	switch variant {
	case schema.VariantOutput, schema.VariantStats:
		a.project(w, r, entity, variant, payload)
	default:
		a.validate(w, r, entity, variant, payload)
	}
}

// ParseVariant accepts both "bulk_action" and "bulk-action" path segments.
func ParseVariant(segment string) schema.Variant {
	return schema.Variant(strings.ReplaceAll(strings.ToLower(segment), "-", "_"))
}

func (a *API) validate(w http.ResponseWriter, r *http.Request, entity string, variant schema.Variant, payload any) {
	ctx := r.Context()
	s, err := a.registry.Schema(entity, variant)
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}

	start := time.Now()
	res := s.Validate(payload)
	if !res.Valid() {
		a.log.WarnContext(ctx, "payload rejected",
			logger.Entity(entity),
			logger.Variant(string(variant)),
			logger.ErrorCount(len(res.Errors)),
			logger.Fields(res.Errors.Fields()),
		)
		_ = writeJSON(w, validationStatus(res.Errors), Envelope{Errors: res.Errors})
		return
	}
	a.log.DebugContext(ctx, "payload validated",
		logger.Entity(entity),
		logger.Variant(string(variant)),
		logger.Duration(time.Since(start)),
	)
	_ = writeJSON(w, http.StatusOK, Envelope{Data: s.Redact(res.Values)})
}

// project shapes a record the way a response would serialize it: undeclared
// and write-only keys are dropped, missing fields become null.
func (a *API) project(w http.ResponseWriter, r *http.Request, entity string, variant schema.Variant, payload any) {
	src, ok := payload.(map[string]any)
	if !ok {
		a.decodeFailed(w, r, ErrNotObject)
		return
	}
	out, err := a.registry.Project(entity, variant, src)
	if err != nil {
		a.lookupFailed(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, Envelope{Data: out})
}

func (a *API) lookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, schema.ErrUnknownEntity):
		_ = writeError(w, http.StatusNotFound, "unknown_entity", err.Error())
	case errors.Is(err, schema.ErrUnknownVariant):
		_ = writeError(w, http.StatusNotFound, "unknown_variant", err.Error())
	default:
		a.log.ErrorContext(r.Context(), "schema lookup failed", logger.Error(err))
		_ = writeError(w, http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError))
	}
}

func (a *API) decodeFailed(w http.ResponseWriter, r *http.Request, err error) {
	a.log.WarnContext(r.Context(), "request body rejected", logger.Error(err))
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		_ = writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())
	case errors.Is(err, ErrBodyTooLarge):
		_ = writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
	default:
		_ = writeJSON(w, http.StatusBadRequest, Envelope{Errors: validator.ValidationErrors{{
			Field:   validator.RootField,
			Code:    validator.CodeInvalidPayloadShape,
			Message: err.Error(),
		}}})
	}
}

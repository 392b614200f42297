// Package logger builds *slog.Logger instances for reqschema processes.
//
// New takes functional options selecting the level, the output format (json
// or text), static attributes and ContextExtractor callbacks. The resulting
// handler is wrapped in a ContextHandler, which runs every extractor on
// each record so request-scoped values such as the request id show up
// without threading a logger through every call.
//
// Attribute helpers in attr.go keep key names consistent across packages:
// Entity, Variant, ErrorCount, Fields, RequestID, Error and friends.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(httpapi.RequestIDExtractor()),
//	)
//	log.WarnContext(ctx, "payload rejected",
//	    logger.Entity("subcategory"),
//	    logger.Variant("create"),
//	    logger.ErrorCount(len(errs)),
//	)
//
// WithFormat panics on unknown formats; validate user input with the config
// package before building the logger.
package logger

// Package httpapi serves a schema registry over HTTP.
//
// Handlers decode the request into a raw mapping (JSON body with numbers kept
// as json.Number, or the query string for list requests), validate it against
// the (entity, variant) schema and answer with one of:
//
//	200 {"data": {...normalized values...}}
//	422 {"errors": [{"field": "...", "code": "...", "message": "..."}]}
//	400 {"errors": [...]}  when the payload is not an object or not JSON
//	404 {"error": {"code": "unknown_entity" | "unknown_variant", ...}}
//
// Nothing is persisted. Every request gets an X-Request-ID that is echoed on
// the response and attached to log records through RequestIDExtractor.
package httpapi

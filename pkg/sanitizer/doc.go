// Package sanitizer provides small, composable string transforms used to
// normalize raw request values before they are validated.
//
// Every helper is a pure func(string) string, so transforms can be chained
// with Apply or stored as reusable pipelines with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	clean("  Caffè   Roma ") // "Caffè Roma"
//
// # Error handling
//
// None of the helpers returns an error. Transforms only rewrite values; the
// decision whether a value is acceptable belongs to the validator package.
//
// The package holds no mutable state and is safe for concurrent use.
package sanitizer

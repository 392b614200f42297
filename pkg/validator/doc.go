// Package validator provides the error taxonomy and the reusable value rules
// that field specifications are assembled from.
//
// A Rule couples a Check function over an already-normalized value with the
// machine-readable Code and a human-readable message reported when the check
// fails. Rules are evaluated with Apply which aggregates every failure into a
// ValidationErrors slice that satisfies the error interface, so a caller can
// surface all field problems in a single round trip.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `choice_rules.go`, `pattern_rules.go`, ...). Every
// exported constructor returns a Rule value; there is no hidden global state
// apart from the immutable format validator, so rules can be shared by any
// number of schemas and evaluated from many goroutines at once.
//
// Values reaching a rule are the normalized Go types produced by the schema
// package: string, int64, decimal.Decimal, bool, time.Time, map[string]any and
// []any. A rule ignores values of a kind it does not apply to.
//
// # Usage
//
//	err := validator.Apply("name", "<b>x</b>",
//	    validator.LenBetween(1, 100),
//	    validator.NoMarkup(),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[0].Code == validator.CodeForbiddenCharacters
//	}
//
// # Error Handling
//
// ValidationErrors implements `error`, so `errors.As` recovers the full list.
// Individual failures are inspected with Has, HasCode, Get, GetErrors and
// Fields. A single ValidationError also implements `error`, which lets custom
// validators return a precise code instead of the generic CodeInvalidValue.
package validator

// Package schema is a declarative validation engine for inbound request
// payloads.
//
// A Field describes one value: its Kind, whether it is required or nullable,
// the default substituted when it is absent, an ordered list of
// validator.Rule constraints and an optional custom predicate. A Schema is a
// named, ordered set of fields plus whole-object rules and normalizers.
//
// # Validation
//
// Schema.Validate proceeds in order:
//
//  1. The input must be a mapping (map[string]any, map[string]string or
//     url.Values); anything else fails with a single invalid_payload_shape
//     error.
//  2. TrimText and the schema's normalizers rewrite a copy of the input.
//  3. Every field is evaluated in declaration order and every error is
//     collected.
//  4. Only if all fields passed, object rules run against the normalized
//     values.
//
// On success the Result holds exactly the declared fields that were present
// or defaulted; unknown keys are dropped.
//
// # Variants
//
// A Catalog holds the canonical fields of one entity. Catalog.Build derives
// the create, update, list, duplicate-check and bulk-action schemas plus the
// output and stats shapes, so constraints are written once:
//
//	variants := schema.Catalog{
//	    Entity: "category",
//	    Fields: []schema.Field{
//	        schema.Text("name", schema.Required(), schema.Rules(
//	            validator.LenBetween(1, 100),
//	            validator.NoMarkup(),
//	        )),
//	    },
//	    DuplicateKeys: []string{"name"},
//	    List: schema.ListSpec{Sortable: []string{"name", "createdAt"}},
//	}.MustBuild()
//
//	res := variants.Create.Validate(map[string]any{"name": " Energia "})
//	// res.Values["name"] == "Energia"
//
// # Concurrency
//
// Schemas are immutable once built and validation touches only its input,
// so any number of goroutines may validate concurrently. A Registry swaps
// whole variant sets atomically for hot reloads.
package schema

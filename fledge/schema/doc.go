// Package schema validates JSON documents against JSON Schemas.
//
// Generators embed a schema.json describing their option bag and compile it
// once at startup:
//
//	//go:embed schema.json
//	var schemaJSON []byte
//
//	var optionsSchema = schema.MustCompile("application.schema.json", schemaJSON)
//
//	if err := optionsSchema.Validate(raw); err != nil {
//	    var verrs schema.ValidationErrors
//	    if errors.As(err, &verrs) { ... }
//	}
//
// Violations are reported as ValidationErrors, one entry per failing leaf
// keyword, with a JSON pointer to the offending field.
package schema

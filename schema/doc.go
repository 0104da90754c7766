// Package schema implements JSON Schema draft 04 validation
// (http://json-schema.org/documentation.html).
//
// Schemas and data are plain decoded JSON values (map[string]interface{},
// []interface{}, float64, string, bool and nil), as produced by Parse.
// References are resolved through a Registry which always knows the
// draft 04 meta-schema, so a schema can be checked against the
// meta-schema with the same engine that checks data against the schema.
//
// Usage example:
//
//   // Load and check the schema.
//   s, err := schema.ParseDraft04Schema(b)
//   if err != nil {
//      log.Fatalf("Schema is not valid: %s", err)
//   }
//
//   // Construct validator.
//   validator := schema.NewValidator(s)
//
//   // Validate some data.
//   if err := validator.Validate(data); err != nil {
//      log.Fatalf("Validation failed: %s", err)
//   }
package schema

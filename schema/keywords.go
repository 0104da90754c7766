package schema

// evaluator checks one keyword. arg is the keyword's value, parent the
// schema object containing it (some keywords depend on siblings) and val
// the data node.
type evaluator func(s *state, arg interface{}, parent map[string]interface{}, val interface{}) error

type keyword struct {
	name string
	eval evaluator
}

// keywords is evaluated in this order. Keys not listed are ignored.
// $ref never reaches this table: it replaces the whole schema object.
var keywords []keyword

// Filled in init: the combinators reach this table again through
// validateObject.
func init() {
	keywords = []keyword{
		{"type", validateType},
		{"enum", validateEnum},

		{"multipleOf", validateMultipleOf},
		{"maximum", validateMaximum},
		{"exclusiveMaximum", validateExclusive},
		{"minimum", validateMinimum},
		{"exclusiveMinimum", validateExclusive},

		{"maxLength", validateMaxLength},
		{"minLength", validateMinLength},
		{"pattern", validatePattern},

		{"items", validateItems},
		{"additionalItems", validateAdditionalItems},
		{"maxItems", validateMaxItems},
		{"minItems", validateMinItems},
		{"uniqueItems", validateUniqueItems},

		{"required", validateRequired},
		{"maxProperties", validateMaxProperties},
		{"minProperties", validateMinProperties},
		{"properties", validateProperties},
		{"patternProperties", validatePatternProperties},
		{"additionalProperties", validateAdditionalProperties},
		{"dependencies", validateDependencies},

		{"allOf", validateAllOf},
		{"anyOf", validateAnyOf},
		{"oneOf", validateOneOf},
		{"not", validateNot},

		{"definitions", annotation},
		{"default", annotation},
		{"title", annotation},
		{"description", annotation},
		{"format", annotation},
		{"id", annotation},
		{"$schema", annotation},
	}
}

func annotation(*state, interface{}, map[string]interface{}, interface{}) error {
	return nil
}

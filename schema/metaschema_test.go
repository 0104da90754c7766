package schema

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestMetaSchemaValidatesItself(t *testing.T) {
	assert.NilError(t, ValidateDraft04Schema(Draft04()))
	assert.NilError(t, ValidateDraft04SchemaAll(Draft04()))

	// A fresh decode of the embedded text is an independent document.
	doc, err := Parse(Draft04JSON())
	assert.NilError(t, err)
	assert.NilError(t, NewValidator(doc).Validate(doc))
}

func TestValidSchemas(t *testing.T) {
	for _, s := range []string{
		`{}`,
		`{"type": ["string", "null"]}`,
		`{"maximum": 5, "exclusiveMaximum": true}`,
		`{"items": [{}, {"type": "integer"}], "additionalItems": false}`,
		`{"dependencies": {"a": ["b"], "c": {"required": ["d"]}}}`,
		`{"definitions": {"x": {"$ref": "#"}}, "not": {"$ref": "#/definitions/x"}}`,
		`{"oneOf": [{"type": "integer"}, {"multipleOf": 2}]}`,
		`{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`,
		`{"format": "uri", "x-vendor-extension": [1, 2]}`,
		`{"allOf": [{"type": "string"}]}`,
		`{"anyOf": [{"type": "integer"}, {"minLength": 1}]}`,
		`{"items": [{}]}`,
		`{"maxLength": 4294967296}`,
	} {
		assert.NilError(t, ValidateDraft04Schema(mustParse(t, s)), s)
	}
}

func TestInvalidSchemas(t *testing.T) {
	tests := []struct {
		schema   string
		dataPath string
	}{
		{`[]`, ""},
		{`{"type": "float"}`, "/type"},
		{`{"type": []}`, "/type"},
		{`{"type": ["string", "string"]}`, "/type"},
		{`{"exclusiveMaximum": true}`, ""},
		{`{"multipleOf": 0}`, "/multipleOf"},
		{`{"minLength": -1}`, "/minLength"},
		{`{"maxItems": 1.5}`, "/maxItems"},
		{`{"required": []}`, "/required"},
		{`{"required": ["a", "a"]}`, "/required"},
		{`{"enum": []}`, "/enum"},
		{`{"properties": {"a": {"type": 1}}}`, "/properties/a/type"},
		{`{"items": [{"minimum": "x"}]}`, "/items"},
		{`{"allOf": []}`, "/allOf"},
		{`{"not": "x"}`, "/not"},
		{`{"title": 5}`, "/title"},
	}
	for _, tc := range tests {
		err := ValidateDraft04Schema(mustParse(t, tc.schema))
		errs := Errors(err)
		assert.Assert(t, is.Len(errs, 1), tc.schema)
		assert.Check(t, is.Equal(errs[0].DataPath, tc.dataPath), tc.schema)
		assert.Check(t, is.Equal(errs[0].Kind, DataMismatch), tc.schema)
	}
}

func TestParseDraft04Schema(t *testing.T) {
	s, err := ParseDraft04Schema([]byte(`{"type": "string"}`))
	assert.NilError(t, err)
	assert.NilError(t, NewValidator(s).Validate("x"))

	_, err = ParseDraft04Schema([]byte(`{"type": `))
	assert.Check(t, is.ErrorContains(err, "failed to parse schema"))

	_, err = ParseDraft04Schema([]byte(`{"type": "float"}`))
	assert.Check(t, err != nil)
}

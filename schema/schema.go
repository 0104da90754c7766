package schema

import (
	"github.com/pkg/errors"
)

// ParseDraft04Schema decodes b and checks the result against the draft 04
// meta-schema.
func ParseDraft04Schema(b []byte) (interface{}, error) {
	v, err := Parse(b)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse schema")
	}
	if err := ValidateDraft04Schema(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateDraft04Schema validates s as data against the draft 04
// meta-schema and returns the first diagnostic.
func ValidateDraft04Schema(s interface{}) error {
	return metaValidator().Validate(s)
}

// ValidateDraft04SchemaAll is like ValidateDraft04Schema but reports every
// diagnostic.
func ValidateDraft04SchemaAll(s interface{}) error {
	return metaValidator().validate(s, true)
}

package schema

import (
	"strings"
)

func validateType(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	switch t := arg.(type) {
	case string:
		if !validType[t] {
			return s.malformed("%q is not a valid type", t)
		}
		if isOfType(val, t) {
			return nil
		}
		return s.fail("must be of type %q, found %s", t, kindOf(val))
	case []interface{}:
		if len(t) < 1 {
			return s.malformed("must have at least 1 element")
		}
		names := make([]string, 0, len(t))
		match := false
		for _, v := range t {
			name, ok := v.(string)
			if !ok {
				return s.malformed("each element must be a string")
			}
			if !validType[name] {
				return s.malformed("%q is not a valid type", name)
			}
			if isOfType(val, name) {
				match = true
			}
			names = append(names, `"`+name+`"`)
		}
		if !match {
			return s.fail("must be of one of the types %s, found %s", strings.Join(names, ", "), kindOf(val))
		}
		return nil
	default:
		return s.malformed("must be a string or an array of strings")
	}
}

func validateEnum(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	values, ok := arg.([]interface{})
	if !ok {
		return s.malformed("must be an array")
	}
	if len(values) < 1 {
		return s.malformed("must have at least 1 element")
	}
	for _, v := range values {
		if equal(v, val) {
			return nil
		}
	}
	return s.fail("must be one of the enumerated values")
}

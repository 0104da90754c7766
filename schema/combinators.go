package schema

import (
	"strconv"
)

func schemaArray(s *state, arg interface{}) ([]interface{}, error) {
	schemas, ok := arg.([]interface{})
	if !ok {
		return nil, s.malformed("must be an array")
	}
	if len(schemas) < 1 {
		return nil, s.malformed("must have at least 1 element")
	}
	return schemas, nil
}

func validateAllOf(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	schemas, err := schemaArray(s, arg)
	if err != nil {
		return err
	}
	var result error
	for i, sch := range schemas {
		if s.collect(&result, s.sub(sch, val, strconv.Itoa(i))) {
			break
		}
	}
	return result
}

func validateAnyOf(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	schemas, err := schemaArray(s, arg)
	if err != nil {
		return err
	}
	for i, sch := range schemas {
		err := s.try(sch, val, strconv.Itoa(i))
		if err == nil {
			return nil
		}
		if IsSchemaError(err) {
			return err
		}
	}
	return s.fail("does not match any of the schemas in \"anyOf\"")
}

func validateOneOf(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	schemas, err := schemaArray(s, arg)
	if err != nil {
		return err
	}
	var matched []int
	for i, sch := range schemas {
		err := s.try(sch, val, strconv.Itoa(i))
		if err == nil {
			matched = append(matched, i)
			continue
		}
		if IsSchemaError(err) {
			return err
		}
	}
	switch len(matched) {
	case 1:
		return nil
	case 0:
		return s.fail("does not match any of the schemas in \"oneOf\"")
	default:
		return s.fail("matches more than one schema in \"oneOf\" (%d and %d)", matched[0], matched[1])
	}
}

func validateNot(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	switch arg.(type) {
	case map[string]interface{}, bool:
	default:
		return s.malformed("must be an object")
	}
	err := s.try(arg, val)
	if err == nil {
		return s.fail("must not match the schema in \"not\"")
	}
	if IsSchemaError(err) {
		return err
	}
	return nil
}

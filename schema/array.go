package schema

import (
	"strconv"
)

func validateItems(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	arr, ok := val.([]interface{})
	switch items := arg.(type) {
	case []interface{}:
		if !ok {
			return nil
		}
		var result error
		for i := 0; i < len(arr) && i < len(items); i++ {
			idx := strconv.Itoa(i)
			if s.collect(&result, s.elem(items[i], arr[i], idx, idx)) {
				break
			}
		}
		return result
	case map[string]interface{}, bool:
		if !ok {
			return nil
		}
		var result error
		for i, v := range arr {
			if s.collect(&result, s.elem(items, v, strconv.Itoa(i))) {
				break
			}
		}
		return result
	default:
		return s.malformed("must be an object or an array of objects")
	}
}

// validateAdditionalItems applies to the elements past a positional
// "items" list. With a single "items" schema it has no effect.
func validateAdditionalItems(s *state, arg interface{}, parent map[string]interface{}, val interface{}) error {
	switch arg.(type) {
	case bool, map[string]interface{}:
	default:
		return s.malformed("must be a boolean or an object")
	}
	items, ok := parent["items"].([]interface{})
	if !ok {
		return nil
	}
	arr, ok := val.([]interface{})
	if !ok || len(arr) <= len(items) {
		return nil
	}
	if allowed, ok := arg.(bool); ok {
		if allowed {
			return nil
		}
		return s.failAt(strconv.Itoa(len(items)), "additional items are not allowed (%d items, at most %d)", len(arr), len(items))
	}
	var result error
	for i := len(items); i < len(arr); i++ {
		if s.collect(&result, s.elem(arg, arr[i], strconv.Itoa(i))) {
			break
		}
	}
	return result
}

func validateMaxItems(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	limit, ok := nonNegativeInt(arg)
	if !ok {
		return s.malformed("must be a non-negative integer")
	}
	arr, ok := val.([]interface{})
	if !ok {
		return nil
	}
	if len(arr) > limit {
		return s.fail("array is too long (%d items), maximum %d", len(arr), limit)
	}
	return nil
}

func validateMinItems(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	limit, ok := nonNegativeInt(arg)
	if !ok {
		return s.malformed("must be a non-negative integer")
	}
	arr, ok := val.([]interface{})
	if !ok {
		return nil
	}
	if len(arr) < limit {
		return s.fail("array is too short (%d items), minimum %d", len(arr), limit)
	}
	return nil
}

func validateUniqueItems(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	unique, ok := arg.(bool)
	if !ok {
		return s.malformed("must be a boolean")
	}
	arr, ok := val.([]interface{})
	if !unique || !ok {
		return nil
	}
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if equal(arr[i], arr[j]) {
				return s.fail("array items %d and %d are equal", i, j)
			}
		}
	}
	return nil
}

package schema

import (
	"sort"
)

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validateRequired(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	names, ok := arg.([]interface{})
	if !ok {
		return s.malformed("must be an array")
	}
	obj, isObject := val.(map[string]interface{})
	var result error
	for _, v := range names {
		name, ok := v.(string)
		if !ok {
			return s.malformed("each element must be a string")
		}
		if !isObject {
			continue
		}
		if _, found := obj[name]; !found {
			if s.collect(&result, s.fail("missing required property %q", name)) {
				break
			}
		}
	}
	return result
}

func validateMaxProperties(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	limit, ok := nonNegativeInt(arg)
	if !ok {
		return s.malformed("must be a non-negative integer")
	}
	obj, ok := val.(map[string]interface{})
	if !ok {
		return nil
	}
	if len(obj) > limit {
		return s.fail("too many properties (%d), maximum %d", len(obj), limit)
	}
	return nil
}

func validateMinProperties(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	limit, ok := nonNegativeInt(arg)
	if !ok {
		return s.malformed("must be a non-negative integer")
	}
	obj, ok := val.(map[string]interface{})
	if !ok {
		return nil
	}
	if len(obj) < limit {
		return s.fail("too few properties (%d), minimum %d", len(obj), limit)
	}
	return nil
}

func validateProperties(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	props, ok := arg.(map[string]interface{})
	if !ok {
		return s.malformed("must be an object")
	}
	obj, ok := val.(map[string]interface{})
	if !ok {
		return nil
	}
	var result error
	for _, name := range sortedKeys(props) {
		v, found := obj[name]
		if !found {
			continue
		}
		if s.collect(&result, s.elem(props[name], v, name, name)) {
			break
		}
	}
	return result
}

func validatePatternProperties(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	props, ok := arg.(map[string]interface{})
	if !ok {
		return s.malformed("must be an object")
	}
	obj, _ := val.(map[string]interface{})
	var result error
	for _, expr := range sortedKeys(props) {
		re, err := compilePattern(expr)
		if err != nil {
			return s.malformed("%q must be a valid regexp: %s", expr, err)
		}
		for _, name := range sortedKeys(obj) {
			if !re.MatchString(name) {
				continue
			}
			if s.collect(&result, s.elem(props[expr], obj[name], name, expr)) {
				return result
			}
		}
	}
	return result
}

// validateAdditionalProperties applies to the properties matched neither
// by "properties" nor by any "patternProperties" pattern.
func validateAdditionalProperties(s *state, arg interface{}, parent map[string]interface{}, val interface{}) error {
	switch a := arg.(type) {
	case bool:
		if a {
			return nil
		}
	case map[string]interface{}:
	default:
		return s.malformed("must be a boolean or an object")
	}
	obj, ok := val.(map[string]interface{})
	if !ok {
		return nil
	}
	props, _ := parent["properties"].(map[string]interface{})
	patternProps, _ := parent["patternProperties"].(map[string]interface{})
	var result error
	for _, name := range sortedKeys(obj) {
		if _, found := props[name]; found {
			continue
		}
		matched := false
		for expr := range patternProps {
			re, err := compilePattern(expr)
			if err != nil {
				return s.malformed("pattern %q must be a valid regexp: %s", expr, err)
			}
			if re.MatchString(name) {
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		var err error
		if _, ok := arg.(bool); ok {
			err = s.failAt(name, "additional property %q is not allowed", name)
		} else {
			err = s.elem(arg, obj[name], name)
		}
		if s.collect(&result, err) {
			break
		}
	}
	return result
}

func validateDependencies(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	deps, ok := arg.(map[string]interface{})
	if !ok {
		return s.malformed("must be an object")
	}
	obj, isObject := val.(map[string]interface{})
	var result error
	for _, name := range sortedKeys(deps) {
		var err error
		switch dep := deps[name].(type) {
		case []interface{}:
			others := make([]string, 0, len(dep))
			for _, v := range dep {
				other, ok := v.(string)
				if !ok {
					return s.malformed("%q: each element must be a string", name)
				}
				others = append(others, other)
			}
			if !isObject {
				continue
			}
			if _, found := obj[name]; !found {
				continue
			}
			for _, other := range others {
				if _, found := obj[other]; found {
					continue
				}
				if s.collect(&result, s.fail("property %q requires property %q", name, other)) {
					return result
				}
			}
			continue
		case map[string]interface{}, bool:
			if !isObject {
				continue
			}
			if _, found := obj[name]; !found {
				continue
			}
			err = s.sub(dep, obj, name)
		default:
			return s.malformed("%q must be an array or an object", name)
		}
		if s.collect(&result, err) {
			break
		}
	}
	return result
}

package schema

import (
	"regexp"
	"sync"
	"unicode/utf8"
)

// patterns caches compiled regular expressions by source. Go's regexp
// runs in time linear in the input, so a hostile pattern can't stall
// validation.
var patterns sync.Map

func compilePattern(expr string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	patterns.Store(expr, re)
	return re, nil
}

func validateMaxLength(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	limit, ok := nonNegativeInt(arg)
	if !ok {
		return s.malformed("must be a non-negative integer")
	}
	str, ok := val.(string)
	if !ok {
		return nil
	}
	if n := utf8.RuneCountInString(str); n > limit {
		return s.fail("string is too long (%d characters), maximum %d", n, limit)
	}
	return nil
}

func validateMinLength(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	limit, ok := nonNegativeInt(arg)
	if !ok {
		return s.malformed("must be a non-negative integer")
	}
	str, ok := val.(string)
	if !ok {
		return nil
	}
	if n := utf8.RuneCountInString(str); n < limit {
		return s.fail("string is too short (%d characters), minimum %d", n, limit)
	}
	return nil
}

func validatePattern(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	expr, ok := arg.(string)
	if !ok {
		return s.malformed("must be a string")
	}
	re, err := compilePattern(expr)
	if err != nil {
		return s.malformed("must be a valid regexp: %s", err)
	}
	str, ok := val.(string)
	if !ok {
		return nil
	}
	if !re.MatchString(str) {
		return s.fail("string does not match pattern %q", expr)
	}
	return nil
}

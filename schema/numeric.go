package schema

import (
	"math"
)

// multipleOfTolerance is the relative error accepted on the quotient, so
// that 0.0075 is a multiple of 0.0001.
const multipleOfTolerance = 1e-9

func validateMultipleOf(s *state, arg interface{}, _ map[string]interface{}, val interface{}) error {
	m, ok := number(arg)
	if !ok {
		return s.malformed("must be a number")
	}
	if m <= 0 {
		return s.malformed("must be > 0")
	}
	n, ok := number(val)
	if !ok {
		return nil
	}
	q := n / m
	if math.IsInf(q, 0) || math.IsNaN(q) || math.Abs(q-math.Round(q)) > multipleOfTolerance*math.Max(1, math.Abs(q)) {
		return s.fail("%v is not a multiple of %v", n, m)
	}
	return nil
}

func validateMaximum(s *state, arg interface{}, parent map[string]interface{}, val interface{}) error {
	limit, ok := number(arg)
	if !ok {
		return s.malformed("must be a number")
	}
	exclusive, ok := exclusiveFlag(parent, "exclusiveMaximum")
	if !ok {
		return s.malformed("\"exclusiveMaximum\" must be a boolean")
	}
	n, ok := number(val)
	if !ok {
		return nil
	}
	if exclusive && n >= limit {
		return s.fail("must be less than %v, found %v", limit, n)
	}
	if n > limit {
		return s.fail("must be less than or equal to %v, found %v", limit, n)
	}
	return nil
}

func validateMinimum(s *state, arg interface{}, parent map[string]interface{}, val interface{}) error {
	limit, ok := number(arg)
	if !ok {
		return s.malformed("must be a number")
	}
	exclusive, ok := exclusiveFlag(parent, "exclusiveMinimum")
	if !ok {
		return s.malformed("\"exclusiveMinimum\" must be a boolean")
	}
	n, ok := number(val)
	if !ok {
		return nil
	}
	if exclusive && n <= limit {
		return s.fail("must be greater than %v, found %v", limit, n)
	}
	if n < limit {
		return s.fail("must be greater than or equal to %v, found %v", limit, n)
	}
	return nil
}

// validateExclusive only checks the shape of exclusiveMaximum and
// exclusiveMinimum; their effect is applied by maximum and minimum.
func validateExclusive(s *state, arg interface{}, _ map[string]interface{}, _ interface{}) error {
	if _, ok := arg.(bool); !ok {
		return s.malformed("must be a boolean")
	}
	return nil
}

func exclusiveFlag(parent map[string]interface{}, name string) (bool, bool) {
	v, found := parent[name]
	if !found {
		return false, true
	}
	b, ok := v.(bool)
	return b, ok
}

package schema

// equal reports whether a and b are structurally equal JSON values.
// Object key order is irrelevant, array order is not.
func equal(a interface{}, b interface{}) bool {
	switch x := a.(type) {
	case []interface{}:
		y, ok := b.([]interface{})
		if !ok {
			return false
		}
		if len(x) != len(y) {
			return false
		}
		for i, item := range x {
			if !equal(item, y[i]) {
				return false
			}
		}
		return true
	case bool:
		y, ok := b.(bool)
		if !ok {
			return false
		}
		return x == y
	case nil:
		return b == nil
	case map[string]interface{}:
		y, ok := b.(map[string]interface{})
		if !ok {
			return false
		}
		if len(x) != len(y) {
			return false
		}
		for k, item := range x {
			other, found := y[k]
			if !found || !equal(item, other) {
				return false
			}
		}
		return true
	case string:
		y, ok := b.(string)
		if !ok {
			return false
		}
		return x == y
	default:
		n, ok := number(a)
		if !ok {
			return false
		}
		m, ok := number(b)
		if !ok {
			return false
		}
		return n == m
	}
}

package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes a whole JSON document into the value model used by the
// validator: objects become map[string]interface{}, arrays []interface{},
// numbers float64.
func Parse(b []byte) (interface{}, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	var v interface{}
	if err := jsonAPI.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

var validType = map[string]bool{
	"array":   true,
	"boolean": true,
	"integer": true,
	"null":    true,
	"number":  true,
	"object":  true,
	"string":  true,
}

// number reports the numeric value of v. Besides float64 it accepts the
// integer types and json.Number, so values built by hand or decoded with
// UseNumber can be validated too.
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func isInteger(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}

// kindOf returns the JSON type name of v, using "integer" for numbers
// without a fractional part.
func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}
	if f, ok := number(v); ok {
		if isInteger(f) {
			return "integer"
		}
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func isOfType(v interface{}, t string) bool {
	k := kindOf(v)
	switch t {
	case "number":
		return k == "number" || k == "integer"
	default:
		return k == t
	}
}

// nonNegativeInt interprets a keyword argument such as maxLength. Limits
// beyond the range of int are clamped; no length can exceed them anyway.
func nonNegativeInt(v interface{}) (int, bool) {
	f, ok := number(v)
	if !ok || !isInteger(f) || f < 0 {
		return 0, false
	}
	if f >= math.MaxInt {
		return math.MaxInt, true
	}
	return int(f), true
}

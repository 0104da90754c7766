package pipeline

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/steenk/tv4/schema"
)

// LoadDocument reads and decodes the document at path. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func LoadDocument(path string) (interface{}, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	var v interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v, err = parseYAML(b)
	default:
		v, err = schema.Parse(b)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return v, nil
}

func parseYAML(b []byte) (interface{}, error) {
	var v interface{}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v)
}

// normalizeYAML converts a decoded YAML tree to the JSON value model.
func normalizeYAML(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64, string, bool, nil:
		return x, nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	default:
		return nil, errors.Errorf("unsupported YAML value of type %T", v)
	}
}

// documentURI names a local file for reference resolution.
func documentURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

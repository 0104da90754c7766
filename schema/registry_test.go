package schema

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestRegistryResolve(t *testing.T) {
	doc := mustParse(t, `{
		"definitions": {
			"a/b": {"type": "string"},
			"c~d": {"type": "integer"},
			"list": [{"type": "null"}, {"type": "boolean"}]
		},
		"n": 3
	}`)
	r := NewRegistry()
	assert.NilError(t, r.Add("file:///tmp/s.json", doc))

	tests := []struct {
		ref  string
		want interface{}
	}{
		{"#", doc},
		{"#/definitions/a~1b", map[string]interface{}{"type": "string"}},
		{"#/definitions/c~0d", map[string]interface{}{"type": "integer"}},
		{"#/definitions/list/1", map[string]interface{}{"type": "boolean"}},
		{"s.json#/n", 3.0},
		{"file:///tmp/s.json#/definitions/list/0", map[string]interface{}{"type": "null"}},
	}
	for _, tc := range tests {
		got, _, err := r.Resolve("file:///tmp/s.json", tc.ref)
		assert.NilError(t, err, tc.ref)
		assert.DeepEqual(t, got, tc.want)
	}
}

func TestRegistryResolveErrors(t *testing.T) {
	r := NewRegistry()
	assert.NilError(t, r.Add("", mustParse(t, `{"a": [1, 2], "s": "x"}`)))

	for _, ref := range []string{
		"#/missing",
		"#/a/2",
		"#/a/01",
		"#/a/-1",
		"#/a/x",
		"#/s/0",
		"#unknown",
		"other.json#",
	} {
		_, _, err := r.Resolve("", ref)
		var rerr *ReferenceError
		assert.Check(t, errors.As(err, &rerr), ref)
	}
}

func TestRegistryKnowsMetaSchema(t *testing.T) {
	r := NewRegistry()
	node, uri, err := r.Resolve("", Draft04URI)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(uri, "http://json-schema.org/draft-04/schema"))
	assert.Check(t, is.Equal(node.(map[string]interface{})["description"], "Core schema meta-schema"))

	node, _, err = r.Resolve("", "http://json-schema.org/draft-04/schema#/definitions/positiveInteger")
	assert.NilError(t, err)
	assert.DeepEqual(t, node, map[string]interface{}{"type": "integer", "minimum": 0.0})
}

func TestRegistryIndexesIDs(t *testing.T) {
	r := NewRegistry()
	assert.NilError(t, r.Add("http://example.com/root.json", mustParse(t, `{
		"definitions": {
			"a": {"id": "#alpha", "type": "string"},
			"b": {"id": "sub/b.json", "definitions": {"x": {"type": "null"}}},
			"c": {"enum": [{"id": "#ignored"}]},
			"d": {"items": [{}, {"id": "#second"}], "dependencies": {"p": {"id": "#dep"}}}
		},
		"examples": [{"id": "http://example.com/shadow.json"}],
		"x-vendor": {"id": "#vendor"}
	}`)))

	node, _, err := r.Resolve("http://example.com/root.json", "#alpha")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(node.(map[string]interface{})["type"], "string"))

	node, _, err = r.Resolve("http://example.com/other.json", "sub/b.json#/definitions/x")
	assert.NilError(t, err)
	assert.DeepEqual(t, node, map[string]interface{}{"type": "null"})

	for _, ref := range []string{"#second", "#dep"} {
		_, _, err = r.Resolve("http://example.com/root.json", ref)
		assert.Check(t, err, ref)
	}

	// ids outside schema-bearing keywords are plain data.
	for _, ref := range []string{"#ignored", "#vendor", "http://example.com/shadow.json"} {
		_, _, err = r.Resolve("http://example.com/root.json", ref)
		assert.Check(t, err != nil, ref)
	}
}

func TestRegistryResolveIgnoresBaseFragment(t *testing.T) {
	doc := mustParse(t, `{"definitions": {"a": {"type": "string"}}}`)
	r := NewRegistry()
	assert.NilError(t, r.Add("http://x/s", doc))

	node, uri, err := r.Resolve("http://x/s#/definitions/a", "#")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(uri, "http://x/s"))
	assert.DeepEqual(t, node, doc)

	node, _, err = r.Resolve("http://x/s#/definitions/a", "s")
	assert.NilError(t, err)
	assert.DeepEqual(t, node, doc)
}

func TestSharedRegistryKeepsRootsApart(t *testing.T) {
	r := NewRegistry()
	str := NewValidator(mustParse(t, `{"anyOf": [{"type": "string"}, {"type": "array", "items": {"$ref": "#"}}]}`), WithRegistry(r))
	num := NewValidator(mustParse(t, `{"anyOf": [{"type": "number"}, {"type": "array", "items": {"$ref": "#"}}]}`), WithRegistry(r))

	assert.NilError(t, str.Validate([]interface{}{"a", []interface{}{"b"}}))
	assert.Check(t, str.Validate([]interface{}{1.0}) != nil)
	assert.NilError(t, num.Validate([]interface{}{1.0, []interface{}{2.0}}))
	assert.Check(t, num.Validate([]interface{}{"a"}) != nil)
}

func TestRefStack(t *testing.T) {
	var s refStack
	assert.NilError(t, s.push("a", ""))
	assert.NilError(t, s.push("a", "/0"))
	assert.NilError(t, s.push("b", ""))
	err := s.push("a", "")
	var cycle *CycleError
	assert.Assert(t, errors.As(err, &cycle))
	assert.Check(t, is.Equal(cycle.Ref, "a"))
	s.pop()
	s.pop()
	s.pop()
	assert.NilError(t, s.push("a", ""))
}

func TestSharedRegistryConcurrentValidation(t *testing.T) {
	r := NewRegistry()
	assert.NilError(t, r.Add("http://example.com/defs.json", mustParse(t, `{
		"definitions": {"name": {"type": "string", "minLength": 1}}
	}`)))
	v := NewValidator(mustParse(t, `{
		"type": "array",
		"items": {"$ref": "http://example.com/defs.json#/definitions/name"}
	}`), WithRegistry(r), WithBaseURI("http://example.com/list.json"))

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			data := []interface{}{"a", "b", fmt.Sprint(i)}
			if i%2 == 1 {
				data = append(data, "")
			}
			err := v.Validate(data)
			switch {
			case i%2 == 0 && err != nil:
				return err
			case i%2 == 1 && err == nil:
				return fmt.Errorf("document %d should have failed", i)
			}
			return nil
		})
	}
	assert.NilError(t, g.Wait())
}

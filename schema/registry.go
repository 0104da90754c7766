package schema

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-openapi/jsonpointer"
	"github.com/pkg/errors"
)

// Registry holds schema documents by URI and resolves references into
// them. Documents are never copied or modified; a Registry can be shared
// by concurrent validations once all documents have been added.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]interface{}
}

// NewRegistry returns a registry that already contains the draft 04
// meta-schema.
func NewRegistry() *Registry {
	r := &Registry{nodes: map[string]interface{}{}}
	if err := r.Add(Draft04URI, Draft04()); err != nil {
		panic(err)
	}
	return r
}

// Add registers doc under uri. The document's own id and every embedded
// subschema carrying an id are indexed too, resolved against the
// enclosing scope.
func (r *Registry) Add(uri string, doc interface{}) error {
	base, err := url.Parse(uri)
	if err != nil {
		return errors.Wrapf(err, "invalid document URI %q", uri)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[normalizeURI(base)] = doc
	r.index(base, doc)
	return nil
}

func (r *Registry) index(base *url.URL, node interface{}) {
	n, ok := node.(map[string]interface{})
	if !ok {
		return
	}
	if id, ok := n["id"].(string); ok {
		if u, err := url.Parse(id); err == nil {
			base = resolveURI(base, u)
			r.nodes[normalizeURI(base)] = n
		}
	}
	for _, k := range []string{"items", "additionalItems", "additionalProperties", "not", "allOf", "anyOf", "oneOf"} {
		switch v := n[k].(type) {
		case []interface{}:
			for _, sub := range v {
				r.index(base, sub)
			}
		default:
			r.index(base, v)
		}
	}
	for _, k := range []string{"properties", "patternProperties", "definitions", "dependencies"} {
		if m, ok := n[k].(map[string]interface{}); ok {
			for _, sub := range m {
				r.index(base, sub)
			}
		}
	}
}

// Resolve resolves ref against base and returns the referenced node
// together with its absolute URI.
func (r *Registry) Resolve(base, ref string) (interface{}, string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, "", &ReferenceError{Ref: ref, Reason: err.Error()}
	}
	if base != "" {
		b, err := url.Parse(base)
		if err != nil {
			return nil, "", &ReferenceError{Ref: ref, Reason: err.Error()}
		}
		u = resolveURI(b, u)
	}
	abs := normalizeURI(u)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if node, ok := r.nodes[abs]; ok {
		return node, abs, nil
	}
	fragment := u.Fragment
	doc := *u
	doc.Fragment = ""
	doc.RawFragment = ""
	root, ok := r.nodes[normalizeURI(&doc)]
	if !ok {
		return nil, "", &ReferenceError{Ref: ref, Reason: "unknown document " + strconv.Quote(doc.String())}
	}
	node, err := walk(root, fragment)
	if err != nil {
		return nil, "", &ReferenceError{Ref: ref, Reason: err.Error()}
	}
	return node, abs, nil
}

// walk follows a JSON pointer from root.
func walk(root interface{}, ptr string) (interface{}, error) {
	if ptr == "" {
		return root, nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, errors.Errorf("no subschema with id %q", "#"+ptr)
	}
	p, err := jsonpointer.New(ptr)
	if err != nil {
		return nil, err
	}
	node := root
	for _, token := range p.DecodedTokens() {
		switch n := node.(type) {
		case map[string]interface{}:
			next, found := n[token]
			if !found {
				return nil, errors.Errorf("%q not found", token)
			}
			node = next
		case []interface{}:
			i, err := arrayIndex(token)
			if err != nil {
				return nil, err
			}
			if i >= len(n) {
				return nil, errors.Errorf("index %d out of range", i)
			}
			node = n[i]
		default:
			return nil, errors.Errorf("can't index %s with %q", kindOf(node), token)
		}
	}
	return node, nil
}

func arrayIndex(token string) (int, error) {
	if token == "" || (len(token) > 1 && token[0] == '0') {
		return 0, errors.Errorf("invalid array index %q", token)
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, errors.Errorf("invalid array index %q", token)
		}
	}
	i, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Errorf("invalid array index %q", token)
	}
	return i, nil
}

// resolveURI resolves ref against base. The fragment of base never
// carries over: an empty fragment in ref names the document root.
func resolveURI(base, ref *url.URL) *url.URL {
	b := *base
	b.Fragment = ""
	b.RawFragment = ""
	return b.ResolveReference(ref)
}

// stripFragment returns uri without its fragment.
func stripFragment(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	u.Fragment = ""
	u.RawFragment = ""
	return normalizeURI(u)
}

// normalizeURI drops an empty fragment so "http://x/s#" and "http://x/s"
// name the same document.
func normalizeURI(u *url.URL) string {
	return strings.TrimSuffix(u.String(), "#")
}

// refStack tracks the references being applied during one validation
// call. The same target applied again to the same data location means
// the schema recurses without consuming any data.
type refStack []refFrame

type refFrame struct {
	target   string
	dataPath string
}

func (s *refStack) push(target, dataPath string) error {
	for _, f := range *s {
		if f.target == target && f.dataPath == dataPath {
			return &CycleError{Ref: target, DataPath: dataPath}
		}
	}
	*s = append(*s, refFrame{target: target, dataPath: dataPath})
	return nil
}

func (s *refStack) pop() {
	*s = (*s)[:len(*s)-1]
}

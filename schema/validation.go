package schema

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// Validator applies one schema to data. It holds no per-call state, so
// Validate may be called from several goroutines at once.
type Validator struct {
	schema    interface{}
	base      string
	registry  *Registry
	allErrors bool
	err       error
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry makes the validator resolve references through r instead
// of a private registry. The schema itself is added to r.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) { v.registry = r }
}

// WithBaseURI sets the URI the schema is registered under and against
// which its relative references are resolved. Without it the schema gets
// a unique urn:uuid name, so validators sharing a registry never clash.
func WithBaseURI(uri string) Option {
	return func(v *Validator) { v.base = uri }
}

// AllErrors makes Validate collect every diagnostic instead of stopping
// at the first one. The result is then a *multierror.Error.
func AllErrors() Option {
	return func(v *Validator) { v.allErrors = true }
}

func NewValidator(schema interface{}, opts ...Option) *Validator {
	v := &Validator{schema: schema}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = NewRegistry()
	}
	if v.base == "" {
		v.base = uuid.New().URN()
	}
	if err := v.registry.Add(v.base, schema); err != nil {
		v.err = &ValidationError{Kind: SchemaConstraint, Message: err.Error(), Err: err}
	}
	if u, err := url.Parse(v.base); err == nil {
		v.base = normalizeURI(u)
	}
	return v
}

// Validate returns nil if val conforms to the schema. Otherwise it returns
// a *ValidationError, or a *multierror.Error of them with AllErrors.
func (v *Validator) Validate(val interface{}) error {
	return v.validate(val, v.allErrors)
}

func (v *Validator) validate(val interface{}, all bool) error {
	if v.err != nil {
		return v.err
	}
	s := &state{
		registry: v.registry,
		all:      all,
		scopes:   []string{v.base},
	}
	return s.validate(v.schema, val)
}

// state is the bookkeeping of a single Validate call.
type state struct {
	registry *Registry
	all      bool
	keyword  string
	data     []string
	schema   []string
	scopes   []string
	refs     refStack
}

func (s *state) validate(schema interface{}, val interface{}) error {
	switch sch := schema.(type) {
	case bool:
		if sch {
			return nil
		}
		return s.fail("no value is allowed here")
	case map[string]interface{}:
		return s.validateObject(sch, val)
	default:
		return s.malformed("schema must be an object, found %s", kindOf(schema))
	}
}

func (s *state) validateObject(schema map[string]interface{}, val interface{}) error {
	if ref, found := schema["$ref"]; found {
		return s.validateRef(ref, val)
	}
	if id, ok := schema["id"].(string); ok {
		s.pushScope(id)
		defer s.popScope()
	}
	var result error
	for _, kw := range keywords {
		arg, found := schema[kw.name]
		if !found {
			continue
		}
		prev := s.keyword
		s.keyword = kw.name
		s.schema = append(s.schema, kw.name)
		err := kw.eval(s, arg, schema, val)
		s.schema = s.schema[:len(s.schema)-1]
		s.keyword = prev
		if s.collect(&result, err) {
			break
		}
	}
	return result
}

func (s *state) validateRef(ref interface{}, val interface{}) error {
	prev := s.keyword
	s.keyword = "$ref"
	s.schema = append(s.schema, "$ref")
	defer func() {
		s.schema = s.schema[:len(s.schema)-1]
		s.keyword = prev
	}()

	str, ok := ref.(string)
	if !ok {
		return s.malformed("must be a string")
	}
	target, uri, err := s.registry.Resolve(s.scope(), str)
	if err != nil {
		return s.wrapMalformed(err)
	}
	if err := s.refs.push(uri, pointer(s.data)); err != nil {
		return s.wrapMalformed(err)
	}
	defer s.refs.pop()
	// Only id changes the resolution scope; a pointer into a document
	// resolves against that document.
	s.scopes = append(s.scopes, stripFragment(uri))
	defer s.popScope()
	return s.validate(target, val)
}

func (s *state) scope() string {
	return s.scopes[len(s.scopes)-1]
}

func (s *state) pushScope(id string) {
	next := id
	if b, err := url.Parse(s.scope()); err == nil {
		if u, err := url.Parse(id); err == nil {
			next = normalizeURI(resolveURI(b, u))
		}
	}
	s.scopes = append(s.scopes, next)
}

func (s *state) popScope() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// sub applies schema to the current data node. schemaPath is appended to
// the schema location for diagnostics.
func (s *state) sub(schema interface{}, val interface{}, schemaPath ...string) error {
	n := len(s.schema)
	s.schema = append(s.schema, schemaPath...)
	err := s.validate(schema, val)
	s.schema = s.schema[:n]
	return err
}

// elem applies schema to a child of the current data node.
func (s *state) elem(schema interface{}, val interface{}, dataKey string, schemaPath ...string) error {
	s.data = append(s.data, dataKey)
	err := s.sub(schema, val, schemaPath...)
	s.data = s.data[:len(s.data)-1]
	return err
}

// try applies schema in single-error mode. Combinators only need to know
// whether a branch matched.
func (s *state) try(schema interface{}, val interface{}, schemaPath ...string) error {
	all := s.all
	s.all = false
	err := s.sub(schema, val, schemaPath...)
	s.all = all
	return err
}

// collect records err into result. It returns true when validation of the
// current schema object should stop.
func (s *state) collect(result *error, err error) bool {
	if err == nil {
		return false
	}
	if !s.all {
		*result = err
		return true
	}
	*result = multierror.Append(*result, err)
	return false
}

func (s *state) fail(format string, args ...interface{}) error {
	return &ValidationError{
		Kind:       DataMismatch,
		Keyword:    s.keyword,
		Message:    fmt.Sprintf(format, args...),
		DataPath:   pointer(s.data),
		SchemaPath: pointer(s.schema),
	}
}

// failAt reports a failure located at a child of the current data node.
func (s *state) failAt(dataKey string, format string, args ...interface{}) error {
	s.data = append(s.data, dataKey)
	err := s.fail(format, args...)
	s.data = s.data[:len(s.data)-1]
	return err
}

func (s *state) malformed(format string, args ...interface{}) error {
	return &ValidationError{
		Kind:       SchemaConstraint,
		Keyword:    s.keyword,
		Message:    fmt.Sprintf(format, args...),
		DataPath:   pointer(s.data),
		SchemaPath: pointer(s.schema),
	}
}

func (s *state) wrapMalformed(err error) error {
	e := s.malformed("%s", err)
	e.(*ValidationError).Err = err
	return e
}

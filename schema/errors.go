package schema

import (
	"fmt"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrorKind tells a nonconforming instance apart from a schema that
// could not be applied.
type ErrorKind int

const (
	// DataMismatch means the data does not satisfy a keyword.
	DataMismatch ErrorKind = iota
	// SchemaConstraint means the schema itself is malformed at the
	// reported location (wrong keyword value, bad $ref, bad pattern).
	SchemaConstraint
)

func (k ErrorKind) String() string {
	switch k {
	case DataMismatch:
		return "data mismatch"
	case SchemaConstraint:
		return "schema constraint"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError is a single diagnostic. DataPath and SchemaPath are
// JSON pointers; the root is "".
type ValidationError struct {
	Kind       ErrorKind
	Keyword    string
	Message    string
	DataPath   string
	SchemaPath string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q: %s", "#"+e.DataPath, e.Message)
}

func (e *ValidationError) Cause() error  { return e.Err }
func (e *ValidationError) Unwrap() error { return e.Err }

// ReferenceError is returned when a $ref cannot be resolved.
type ReferenceError struct {
	Ref    string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("can't resolve reference %q: %s", e.Ref, e.Reason)
}

// CycleError is returned when resolving a $ref leads back to a reference
// that is already being applied to the same data.
type CycleError struct {
	Ref      string
	DataPath string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("reference %q loops back on itself at %q", e.Ref, "#"+e.DataPath)
}

// Errors flattens the result of Validate into its diagnostics.
func Errors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		var out []*ValidationError
		for _, e := range merr.Errors {
			out = append(out, Errors(e)...)
		}
		return out
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return []*ValidationError{verr}
	}
	return []*ValidationError{{Kind: SchemaConstraint, Message: err.Error(), Err: err}}
}

// IsSchemaError reports whether err carries at least one SchemaConstraint
// diagnostic.
func IsSchemaError(err error) bool {
	for _, e := range Errors(err) {
		if e.Kind == SchemaConstraint {
			return true
		}
	}
	return false
}

func pointer(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(jsonpointer.Escape(s))
	}
	return b.String()
}

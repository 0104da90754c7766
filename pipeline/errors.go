package pipeline

import (
	"fmt"
)

// FileAccessError means a document path is missing or unreadable.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("couldn't get file %s: %s", e.Path, e.Err)
}

func (e *FileAccessError) Cause() error  { return e.Err }
func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError means a document is not well-formed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse file %s: %s", e.Path, e.Err)
}

func (e *ParseError) Cause() error  { return e.Err }
func (e *ParseError) Unwrap() error { return e.Err }

// SchemaInvalidError means the schema failed the meta-schema check, or
// turned out to be unusable (bad reference, malformed keyword) while data
// was validated against it.
type SchemaInvalidError struct {
	Path string
	Err  error
}

func (e *SchemaInvalidError) Error() string {
	return fmt.Sprintf("schema %s is not valid: %s", e.Path, e.Err)
}

func (e *SchemaInvalidError) Cause() error  { return e.Err }
func (e *SchemaInvalidError) Unwrap() error { return e.Err }

// DataInvalidError means a data document does not conform to the schema.
type DataInvalidError struct {
	Path string
	Err  error
}

func (e *DataInvalidError) Error() string {
	return fmt.Sprintf("data %s is not valid: %s", e.Path, e.Err)
}

func (e *DataInvalidError) Cause() error  { return e.Err }
func (e *DataInvalidError) Unwrap() error { return e.Err }

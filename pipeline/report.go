package pipeline

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/steenk/tv4/schema"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// reporter prints results the way the tv4 command always has: one line
// per outcome, diagnostics only in verbose mode.
type reporter struct {
	out     io.Writer
	err     io.Writer
	verbose bool
	// schema is the main schema path; other schema documents are named
	// in their messages.
	schema string
}

func (r *reporter) loadFailed(err error) {
	failColor.Fprintln(r.err, err)
}

func (r *reporter) schemaValid() {
	if r.verbose {
		okColor.Fprintln(r.out, "Schema is valid")
	}
}

func (r *reporter) schemaInvalid(err error) {
	var serr *SchemaInvalidError
	if !errors.As(err, &serr) {
		failColor.Fprintln(r.err, "Schema is not valid.")
		return
	}
	if serr.Path != r.schema {
		failColor.Fprintf(r.err, "%s: Schema is not valid.\n", serr.Path)
	} else {
		failColor.Fprintln(r.err, "Schema is not valid.")
	}
	r.details(serr.Err)
}

func (r *reporter) dataResult(path string, named bool, err error) {
	prefix := ""
	if named {
		prefix = path + ": "
	}
	var (
		derr *DataInvalidError
		serr *SchemaInvalidError
	)
	switch {
	case err == nil:
		if r.verbose {
			okColor.Fprintf(r.out, "%sJSON is valid.\n", prefix)
		}
	case errors.As(err, &derr):
		failColor.Fprintf(r.err, "%sJSON is not valid.\n", prefix)
		r.details(derr.Err)
	case errors.As(err, &serr):
		failColor.Fprintf(r.err, "%sSchema is not valid.\n", prefix)
		r.details(serr.Err)
	default:
		failColor.Fprintf(r.err, "%s%s\n", prefix, err)
	}
}

func (r *reporter) details(err error) {
	if !r.verbose {
		return
	}
	for _, e := range schema.Errors(err) {
		fmt.Fprintf(r.err, "%s in path %q.\n", e.Message, e.DataPath)
	}
}

// Package pipeline drives the two validation stages: a schema document is
// checked against the draft 04 meta-schema and, if that succeeds, data
// documents are checked against the schema.
package pipeline

import (
	"context"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/steenk/tv4/schema"
)

// Options selects the documents to validate and how to report.
type Options struct {
	// SchemaPath is the schema document. Required.
	SchemaPath string
	// DataPaths are validated against the schema, concurrently. If empty
	// only the schema is checked.
	DataPaths []string
	// RefPaths are extra schema documents made available to $ref, under
	// their id or else their file URI.
	RefPaths []string
	// Verbose reports successes and the diagnostics of failures.
	Verbose bool
	// AllErrors reports every diagnostic instead of the first one.
	AllErrors bool
}

// Pipeline runs one validation request.
type Pipeline struct {
	opts   Options
	report *reporter
	log    logrus.FieldLogger
}

func New(opts Options, stdout, stderr io.Writer, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Pipeline{
		opts:   opts,
		report: &reporter{out: stdout, err: stderr, verbose: opts.Verbose, schema: opts.SchemaPath},
		log:    log,
	}
}

// Run executes both stages. It returns nil only if every requested
// validation passed; failures have already been reported when Run
// returns.
func (p *Pipeline) Run(ctx context.Context) error {
	log := p.log.WithField("schema", p.opts.SchemaPath)

	log.Debug("loading schema")
	doc, err := LoadDocument(p.opts.SchemaPath)
	if err != nil {
		p.report.loadFailed(err)
		return err
	}
	if err := p.checkSchema(p.opts.SchemaPath, doc); err != nil {
		return err
	}

	registry := schema.NewRegistry()
	for _, path := range p.opts.RefPaths {
		log.WithField("ref", path).Debug("loading referenced schema")
		ref, err := LoadDocument(path)
		if err != nil {
			p.report.loadFailed(err)
			return err
		}
		if err := p.checkSchema(path, ref); err != nil {
			return err
		}
		if err := registry.Add(documentURI(path), ref); err != nil {
			err = &SchemaInvalidError{Path: path, Err: err}
			p.report.schemaInvalid(err)
			return err
		}
	}
	p.report.schemaValid()

	if len(p.opts.DataPaths) == 0 {
		return nil
	}

	opts := []schema.Option{
		schema.WithRegistry(registry),
		schema.WithBaseURI(documentURI(p.opts.SchemaPath)),
	}
	if p.opts.AllErrors {
		opts = append(opts, schema.AllErrors())
	}
	validator := schema.NewValidator(doc, opts...)

	results := make([]error, len(p.opts.DataPaths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range p.opts.DataPaths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.checkData(validator, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var first error
	for i, path := range p.opts.DataPaths {
		err := results[i]
		p.report.dataResult(path, len(p.opts.DataPaths) > 1, err)
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

// checkSchema is stage one: doc validated as data against the meta-schema.
func (p *Pipeline) checkSchema(path string, doc interface{}) error {
	var err error
	if p.opts.AllErrors {
		err = schema.ValidateDraft04SchemaAll(doc)
	} else {
		err = schema.ValidateDraft04Schema(doc)
	}
	if err != nil {
		err = &SchemaInvalidError{Path: path, Err: err}
		p.report.schemaInvalid(err)
		return err
	}
	p.log.WithField("schema", path).Debug("schema is valid")
	return nil
}

// checkData is stage two for a single document.
func (p *Pipeline) checkData(v *schema.Validator, path string) error {
	log := p.log.WithField("json", path)
	log.Debug("loading data")
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	if err := v.Validate(doc); err != nil {
		log.WithError(err).Debug("data is not valid")
		if schema.IsSchemaError(err) {
			return &SchemaInvalidError{Path: p.opts.SchemaPath, Err: err}
		}
		return &DataInvalidError{Path: path, Err: err}
	}
	log.Debug("data is valid")
	return nil
}

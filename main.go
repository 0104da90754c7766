package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/steenk/tv4/pipeline"
)

type options struct {
	pipeline.Options
	noColor  bool
	logLevel string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tv4 -s <file> [-j <file>]... [-v]",
		Short: "Validate a JSON schema against draft 04, then JSON documents against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.SchemaPath == "" {
				return cmd.Usage()
			}
			log, err := newLogger(stderr, opts.logLevel, opts.Verbose)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}
			if opts.noColor {
				color.NoColor = true
			}
			return pipeline.New(opts.Options, stdout, stderr, log).Run(cmd.Context())
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(stderr, err)
		c.Usage()
		return err
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.SchemaPath, "schema", "s", "", "Path to the schema to validate (required)")
	flags.StringArrayVarP(&opts.DataPaths, "json", "j", nil, "Path to a JSON document to validate against the schema; may be repeated")
	flags.StringArrayVarP(&opts.RefPaths, "ref", "r", nil, "Path to an additional schema that $ref may point to; may be repeated")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print successes and failure details")
	flags.BoolVar(&opts.AllErrors, "all-errors", false, "Report every failure instead of the first one")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	return cmd
}

// newLogger builds the stderr logger. verbose raises the level to debug.
func newLogger(w io.Writer, level string, verbose bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	return log, nil
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

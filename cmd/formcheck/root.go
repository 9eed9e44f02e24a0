package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/formschema"
	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// errInvalidForm signals that the form was checked and has errors. The
// details have already been printed.
var errInvalidForm = errors.New("form is invalid")

type app struct {
	out    io.Writer
	errOut io.Writer

	cfg    Config
	log    *slog.Logger
	colors palette

	valuesFile string
	logLevel   string
	colorMode  string
}

type palette struct {
	field func(a ...any) string
	ok    func(a ...any) string
}

func newPalette(enabled bool) palette {
	paint := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		field: paint(color.FgRed, color.Bold),
		ok:    paint(color.FgGreen),
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:               "formcheck",
		Short:             "Validate values against YAML or JSON form definitions",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.valuesFile, "values", "", "YAML or JSON values document patched into the form")
	pf.StringVar(&a.logLevel, "log-level", "", "log level, overrides "+envPrefix+"LOG_LEVEL")
	pf.StringVar(&a.colorMode, "color", "", "auto, always or never, overrides "+envPrefix+"COLOR")

	cmd.AddCommand(
		a.validateCmd(),
		a.errorsCmd(),
		a.valuesCmd(),
		a.flattenCmd(),
		a.validatorsCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.colorMode != "" {
		cfg.Color = a.colorMode
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := cfg.logger(a.errOut)
	if err != nil {
		return err
	}
	formpath.SetCacheSize(cfg.PathCacheSize)

	a.cfg = cfg
	a.log = log
	a.colors = newPalette(cfg.colorEnabled(a.out))
	cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
	return nil
}

// loadForm compiles the definition at path and applies --values.
func (a *app) loadForm(ctx context.Context, path string) (*formtree.Group, error) {
	c := formschema.NewCompiler(formschema.WithLogger(a.log))
	g, err := c.CompileFile(path)
	if err != nil {
		return nil, err
	}
	if a.valuesFile != "" {
		values, err := formschema.DecodeValuesFile(a.valuesFile)
		if err != nil {
			return nil, err
		}
		if err := g.PatchDeep(values); err != nil {
			return nil, err
		}
		a.log.DebugContext(ctx, "values applied", logger.File(a.valuesFile), logger.Count(len(values)))
	}
	a.log.InfoContext(ctx, "form loaded", logger.File(path), logger.Count(g.Len()))
	return g, nil
}

// printYAML writes v as a YAML document.
func (a *app) printYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

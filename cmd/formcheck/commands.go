package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/formpath"
	"github.com/dmitrymomot/formkit/pkg/formschema"
	"github.com/dmitrymomot/formkit/pkg/formtree"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <definition>",
		Short: "Check the form and print one line per failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadForm(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			err = formkit.Check(g)
			if err == nil {
				fmt.Fprintln(a.out, a.colors.ok("valid"))
				return nil
			}
			var ve formkit.ValidationError
			if !errors.As(err, &ve) {
				return err
			}
			for _, field := range ve.Fields() {
				for _, msg := range ve.All(field) {
					fmt.Fprintf(a.out, "%s: %s\n", a.colors.field(field), msg)
				}
			}
			a.log.InfoContext(cmd.Context(), "form is invalid", logger.Count(len(ve)))
			return errInvalidForm
		},
	}
}

func (a *app) errorsCmd() *cobra.Command {
	var flat, self bool
	cmd := &cobra.Command{
		Use:   "errors <definition>",
		Short: "Print the collected validation errors as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadForm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if _, err := formtree.Validate(g); err != nil {
				return err
			}

			opts := formtree.CollectOptions{IncludeSelf: self}
			if !flat {
				return a.printYAML(formtree.CollectErrorsWith(g, opts))
			}
			out := formtree.CollectErrorsFlatWith(g, "", opts)
			if e, ok := out[""]; ok {
				delete(out, "")
				out[formkit.RootField] = e
			}
			return a.printYAML(out)
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "key errors by path instead of nesting them")
	cmd.Flags().BoolVar(&self, "self", false, "include errors of group and array validators")
	return cmd
}

func (a *app) valuesCmd() *cobra.Command {
	var (
		mark  string
		paths []string
	)
	cmd := &cobra.Command{
		Use:   "values <definition>",
		Short: "Print the form value, optionally only marked leaves or selected paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mark != "" && len(paths) > 0 {
				return errors.New("--mark and --paths cannot be combined")
			}
			g, err := a.loadForm(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch {
			case mark != "":
				s, err := formtree.ParseState(mark)
				if err != nil {
					return err
				}
				m, err := formtree.ExtractByMark(g, s)
				if err != nil {
					return err
				}
				return a.printYAML(m.Value)
			case len(paths) > 0:
				v, err := g.Values(paths...)
				if err != nil {
					return err
				}
				return a.printYAML(v)
			}
			return a.printYAML(g.Value())
		},
	}
	cmd.Flags().StringVar(&mark, "mark", "", "only leaves carrying this state: touched, untouched, dirty, pristine or pending")
	cmd.Flags().StringSliceVar(&paths, "paths", nil, "only these paths, e.g. users[0].email")
	return cmd
}

func (a *app) flattenCmd() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "flatten <definition>",
		Short: "Print the form value as a single-level mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadForm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printYAML(formpath.Flatten(g.Value(), sep))
		},
	}
	cmd.Flags().StringVar(&sep, "sep", "/", "separator between path parts")
	return cmd
}

func (a *app) validatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validators",
		Short: "List the validator names usable in definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range formschema.NewCompiler().Validators() {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

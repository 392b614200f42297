package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reqschema/pkg/httpapi"
)

func newDescribeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "describe [ENTITY]",
		Short: "Describe entity schemas",
		Long: `Without arguments, list the registered entities. With ENTITY, print the
fields of every variant: kind, required, nullable, default and constraints.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := ""
			if len(args) == 1 {
				entity = args[0]
			}
			return a.describe(cmd.OutOrStdout(), entity, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

func (a *app) describe(out io.Writer, entity, format string) error {
	reg, err := a.registry()
	if err != nil {
		return err
	}

	var v any
	if entity == "" {
		v = reg.Entities()
	} else {
		variants, err := reg.Variants(entity)
		if err != nil {
			return err
		}
		v = httpapi.DescribeVariants(variants)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: want yaml or json", format)
	}
}

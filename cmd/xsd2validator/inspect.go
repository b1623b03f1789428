package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"xsd-validator-generator/internal/xsd"
)

func newInspectCmd(opts *options) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect [flags] SCHEMA...",
		Short: "List the types of the given schemas with their facets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas, diags, err := xsd.LoadFiles(args...)
			if rerr := report("schema", &diags); rerr != nil {
				return rerr
			}

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump {
				cfg := spew.ConfigState{Indent: "  ", MaxDepth: 4, DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(out, schemas)

				return nil
			}

			inspect(out, schemas)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the loaded schema model")

	return cmd
}

func inspect(w io.Writer, schemas []*xsd.Schema) {
	for _, s := range schemas {
		fmt.Fprintf(w, "%s (%s)\n", s.Location, s.TargetNamespace)

		for _, t := range s.Types {
			fmt.Fprintf(w, "  %s %s\n", kind(t), t.Name())

			if r := t.Restriction(); r != nil {
				for _, f := range r.Facets {
					fmt.Fprintf(w, "    %s=%s\n", f.Name, f.Value)
				}
			}

			if ct, ok := t.(*xsd.ComplexType); ok {
				for _, el := range ct.Elements {
					fmt.Fprintf(w, "    element %s [%s]\n", el.Name, occurs(el.Min, el.Max))
				}

				for _, a := range ct.Attributes {
					fmt.Fprintf(w, "    attribute %s\n", a.Name)
				}
			}
		}

		for _, el := range s.Elements {
			fmt.Fprintf(w, "  element %s\n", el.Name)
		}
	}
}

func kind(t xsd.Type) string {
	switch t := t.(type) {
	case *xsd.ComplexType:
		if t.SimpleContent {
			return "complexType(simpleContent)"
		}

		return "complexType"
	case *xsd.SimpleType:
		var parts []string
		if t.List != nil {
			parts = append(parts, "list")
		}

		if len(t.Union) > 0 {
			parts = append(parts, "union")
		}

		if len(parts) == 0 {
			return "simpleType"
		}

		return "simpleType(" + strings.Join(parts, ",") + ")"
	default:
		return "type"
	}
}

func occurs(low, high int) string {
	if high == xsd.Unbounded {
		return fmt.Sprintf("%d..*", low)
	}

	return fmt.Sprintf("%d..%d", low, high)
}

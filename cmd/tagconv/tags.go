package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"type-transformer/node"
)

func (a *app) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags of the selected builtin transformers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.registry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tVARIANT\tCLASS")

			for _, t := range c.Transformers() {
				class := "-"
				if t.Class() != nil {
					class = node.TypeName(t.Class())
				}

				fmt.Fprintf(w, "%s%s\t%s\t%s\n", c.Options().Prefix, t.Path(), t.Variant(), class)
			}

			return w.Flush()
		},
	}
}

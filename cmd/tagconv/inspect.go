package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var inspectDumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the Go values a tagged document restores to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			c, err := a.registry()
			if err != nil {
				return err
			}

			v, err := c.Parse(data)
			if err != nil {
				return err
			}

			inspectDumper.Fdump(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

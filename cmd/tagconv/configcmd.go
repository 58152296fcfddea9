package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-transformer/internal/config"
)

const defaultConfigPath = "tagconv.yaml"

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tagconv config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config to path (default " + defaultConfigPath + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) > 0 {
				path = args[0]
			}

			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	})

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			if f := a.cfg.ConfigFileUsed(); f != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", f)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print the terminal size as COLUMNS ROWS",
		Long: `Print the size of the first of stdin, stdout and stderr that is a
terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := make([]uint32, 2)
			if err := a.ctl.ConsoleSizeInto(dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", dst[0], dst[1])
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wader/ttyline"
	"github.com/wader/ttyline/tty"
)

func newRawCmd(a *app) *cobra.Command {
	var cbreak bool
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Show keys as they arrive with stdin in raw mode",
		Long: `Put stdin in raw mode and print every byte read until q, Ctrl-C or
Ctrl-D. With --cbreak Ctrl-C and Ctrl-Z still generate signals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err := a.ctl.SetRaw(tty.Stdin, true, cbreak); err != nil {
				return err
			}
			defer func() {
				if rerr := a.ctl.SetRaw(tty.Stdin, false, false); rerr != nil {
					a.log.Error().Err(rerr).Msg("failed to restore stdin")
					if err == nil {
						err = rerr
					}
				}
			}()

			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			var b [1]byte
			for {
				n, err := in.Read(b[:])
				if n == 1 {
					// output post-processing may be off too, so \r\n
					fmt.Fprintf(out, "%q 0x%02x\r\n", b[0], b[0])
					switch b[0] {
					case 'q', ttyline.CharInterrupt, ttyline.CharDelete:
						return nil
					}
				}
				if errors.Is(err, io.EOF) {
					return nil
				} else if err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().BoolVar(&cbreak, "cbreak", false, "keep Ctrl-C and Ctrl-Z generating signals")
	return cmd
}

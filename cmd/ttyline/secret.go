package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nbutton23/zxcvbn-go"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wader/ttyline"
)

func newSecretCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Read a password without echo and rate its strength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd)
			if errors.Is(err, io.EOF) {
				return exitError{code: 1}
			} else if err != nil {
				return err
			}

			strength := zxcvbn.PasswordStrength(string(pw), nil)
			a.log.Debug().Float64("calc_time_ms", strength.CalcTime).Msg("password rated")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score: %s\n", scoreStyle(strength.Score).Render(fmt.Sprintf("%d/4", strength.Score)))
			fmt.Fprintf(out, "crack time: %s\n", strength.CrackTimeDisplay)
			fmt.Fprintf(out, "entropy: %s\n", StyleMuted.Render(fmt.Sprintf("%.1f bits", strength.Entropy)))
			return nil
		},
	}
}

// readSecret reads a password without echo from a terminal, or one line
// when stdin is piped.
func readSecret(cmd *cobra.Command) ([]byte, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		pw, err := ttyline.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return pw, err
	}

	rl, err := ttyline.New(&ttyline.Config{Stdin: cmd.InOrStdin(), Stdout: io.Discard})
	if err != nil {
		return nil, err
	}
	line, err := rl.ReadLine()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wader/ttyline/tty"
)

func (a *app) prompter(cmd *cobra.Command) *tty.Prompter {
	return &tty.Prompter{
		Stdin: cmd.InOrStdin(),
		// prompt and editing go to stderr so stdout carries only the line
		Stdout:          cmd.ErrOrStderr(),
		KeySeqTimeout:   a.cfg.Prompt.KeySeqTimeout,
		InterruptPrompt: a.cfg.Prompt.InterruptPrompt,
		EOFPrompt:       a.cfg.Prompt.EOFPrompt,
		IgnoreEscape:    !a.cfg.Prompt.EscapeCancels,
		Interrupt:       a.interrupt,
	}
}

func newPromptCmd(a *app) *cobra.Command {
	var (
		def  string
		mask bool
	)
	cmd := &cobra.Command{
		Use:   "prompt TEXT",
		Short: "Read one line and print it",
		Long: `Show TEXT as a prompt, read one line and print it on stdout. Ctrl-C or
Escape interrupts the process; end of input exits with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.prompter(cmd)
			if mask {
				p.MaskRune = '*'
			}
			line, ok, err := p.ReadLinePrompt(a.promptStyle(args[0]), def)
			if err != nil {
				return err
			}
			if !ok {
				a.log.Debug().Msg("no line read")
				return exitError{code: 1}
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "text to pre-fill the line with")
	cmd.Flags().BoolVar(&mask, "mask", false, "show * instead of the typed text")
	return cmd
}

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wader/ttyline/internal/config"
	"github.com/wader/ttyline/tty"
)

// exitError ends the process with code and no message.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type app struct {
	configFile string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
	ctl *tty.Controller
	// raises the interrupt for a cancelled prompt, tty.RaiseInterrupt if nil
	interrupt func()
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ttyline",
		Short: "Terminal mode, size and line prompt tool",
		Long: `ttyline switches the terminal between cooked and raw mode, reports its size
and reads prompted lines. The original stdin mode is put back whenever the
process exits, also when it is killed by a signal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}
			cfg.Log.ConfigureZerolog()
			a.cfg = cfg
			a.log = cfg.Log.Logger(cmd.ErrOrStderr())
			if a.ctl == nil {
				a.ctl = tty.NewController(tty.NewFileTable(), tty.WithLogger(a.log))
			}
			a.log.Debug().Str("config_file", cfg.ConfigFileUsed()).Msg("configuration loaded")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is $HOME/.ttyline/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newSizeCmd(a))
	cmd.AddCommand(newRawCmd(a))
	cmd.AddCommand(newPromptCmd(a))
	cmd.AddCommand(newSecretCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	return cmd
}

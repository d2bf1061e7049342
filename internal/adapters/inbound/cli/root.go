package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/logcheck/logcheck/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	logCfg := logging.DefaultConfig()
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "logcheck",
		Short: "Validate student activity log files",
		Long: "logcheck checks every 'LastnameFirstnameLog.csv' activity log in a folder and reports " +
			"the first problem in each file to the console and to ValidityChecks.txt.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, &opts, newLogger(cmd, logCfg))
		},
	}
	addValidateFlags(cmd, &opts)

	cmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", logCfg.Level, "Diagnostic log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logCfg.Format, "log-format", logCfg.Format, "Diagnostic log format (console, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd(&logCfg))
	cmd.AddCommand(newWatchCmd(&logCfg))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newActivitiesCmd())
	cmd.AddCommand(newMCPCmd(&logCfg))
	return cmd
}

func newLogger(cmd *cobra.Command, cfg logging.Config) zerolog.Logger {
	return logging.New(cfg, cmd.ErrOrStderr())
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

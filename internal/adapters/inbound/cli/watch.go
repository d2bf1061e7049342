package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/logcheck/logcheck/internal/adapters/outbound/watcher"
	"github.com/logcheck/logcheck/internal/logging"
)

func newWatchCmd(logCfg *logging.Config) *cobra.Command {
	var (
		opts   validateOptions
		settle time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate the activity logs whenever one changes",
		Long: "Validate the folder once, then keep watching it and validate again each time a .csv file " +
			"is created, saved or removed. Stop with Ctrl-C.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, &opts, settle, newLogger(cmd, *logCfg))
		},
	}
	addValidateFlags(cmd, &opts)
	cmd.Flags().DurationVar(&settle, "settle", watcher.DefaultSettle, "Quiet period after a change before re-validating")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *validateOptions, settle time.Duration, log zerolog.Logger) error {
	absPath, err := filepath.Abs(opts.path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	// A broken folder is reported and watched anyway; fixing it is the point.
	revalidate := func() {
		if err := runValidate(cmd, opts, log); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
	}

	revalidate()
	if !opts.quiet && !opts.jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for log changes. Press Ctrl-C to stop.\n", absPath)
	}

	w := watcher.New(absPath, settle, log)
	return w.Run(cmd.Context(), func(names []string) {
		log.Info().Str("files", strings.Join(names, ",")).Msg("re-validating after change")
		revalidate()
	})
}

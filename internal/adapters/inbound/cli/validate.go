package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/logcheck/logcheck/internal/adapters/outbound/config"
	"github.com/logcheck/logcheck/internal/adapters/outbound/csvreader"
	"github.com/logcheck/logcheck/internal/adapters/outbound/gitinfo"
	"github.com/logcheck/logcheck/internal/adapters/outbound/history"
	"github.com/logcheck/logcheck/internal/adapters/outbound/scanner"
	"github.com/logcheck/logcheck/internal/adapters/outbound/sink"
	"github.com/logcheck/logcheck/internal/adapters/outbound/tui"
	"github.com/logcheck/logcheck/internal/application"
	"github.com/logcheck/logcheck/internal/domain"
	"github.com/logcheck/logcheck/internal/logging"
)

type validateOptions struct {
	path       string
	output     string
	course     string
	dropEmpty  bool
	quiet      bool
	jsonOutput bool
	noHistory  bool
}

func newValidateCmd(logCfg *logging.Config) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the activity logs in a folder",
		Long:  "Check every activity log in the folder, write the report to the output file and echo it to the console.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, &opts, newLogger(cmd, *logCfg))
		},
	}
	addValidateFlags(cmd, &opts)

	return cmd
}

func addValidateFlags(cmd *cobra.Command, opts *validateOptions) {
	cmd.Flags().StringVar(&opts.path, "path", ".", "Folder containing the activity logs")
	cmd.Flags().StringVar(&opts.output, "output", "", "Report file name (default from config: ValidityChecks.txt)")
	cmd.Flags().StringVar(&opts.course, "course", "", "Required course identifier (default from config: CS 4500)")
	cmd.Flags().BoolVar(&opts.dropEmpty, "drop-empty", false, "Discard empty fields instead of keeping their position")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Print only the report")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON instead of text")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record this run in the history")
}

func newValidateService(log zerolog.Logger) *application.ValidateService {
	return application.NewValidateService(
		scanner.New(),
		config.New(),
		func(cfg domain.Config) domain.RowReader { return csvreader.New(cfg.DropEmptyFields) },
		log,
	)
}

func runValidate(cmd *cobra.Command, opts *validateOptions, log zerolog.Logger) error {
	absPath, err := filepath.Abs(opts.path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	svc := newValidateService(log)

	cfg, err := svc.LoadConfig(absPath)
	if err != nil {
		return err
	}
	applyOverrides(cmd, opts, &cfg)

	out := cmd.OutOrStdout()
	styled := !opts.quiet && !opts.jsonOutput
	if styled {
		fmt.Fprint(out, tui.RenderIntro(absPath))
	}

	report, err := svc.Run(cmd.Context(), absPath, cfg)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fileSink := sink.NewFile(filepath.Join(absPath, cfg.OutputFile))
	sinks := []domain.ReportSink{fileSink}
	if !opts.jsonOutput {
		sinks = append(sinks, sink.NewConsole(out))
	}
	if err := svc.Publish(report, sinks...); err != nil {
		return err
	}

	if !opts.noHistory {
		recordRun(history.New(), gitinfo.New(), absPath, report, log)
	}

	switch {
	case opts.jsonOutput:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case styled:
		fmt.Fprint(out, tui.RenderSummary(report, fileSink.Path()))
	}

	return nil
}

// applyOverrides lets explicit flags win over the loaded config.
func applyOverrides(cmd *cobra.Command, opts *validateOptions, cfg *domain.Config) {
	if cmd.Flags().Changed("output") {
		cfg.OutputFile = opts.output
	}
	if cmd.Flags().Changed("course") {
		cfg.CourseID = opts.course
	}
	if cmd.Flags().Changed("drop-empty") {
		cfg.DropEmptyFields = opts.dropEmpty
	}
}

// recordRun appends the run to the history. Failures are logged, never fatal.
func recordRun(runs domain.RunHistory, git domain.GitInfo, dir string, report *domain.Report, log zerolog.Logger) {
	errs, warns := report.Totals()
	entry := domain.RunEntry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().Format(time.RFC3339),
		Dir:          dir,
		FilesChecked: len(report.Files),
		Errors:       errs,
		Warnings:     warns,
	}

	if hash, err := git.CommitHash(dir); err == nil {
		entry.CommitHash = hash
	} else {
		log.Debug().Err(err).Msg("no git provenance for run")
	}

	if err := runs.Save(dir, entry); err != nil {
		log.Warn().Err(err).Msg("could not record run history")
	}
}

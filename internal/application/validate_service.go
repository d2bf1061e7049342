package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/logcheck/logcheck/internal/domain"
	"github.com/logcheck/logcheck/internal/domain/check"
)

// RowReaderFactory builds the row reader for a configuration, since the
// empty-field policy is a config setting.
type RowReaderFactory func(cfg domain.Config) domain.RowReader

// ValidateService orchestrates the validation pipeline:
// list csv files -> filter log names -> check each file -> assemble report.
type ValidateService struct {
	lister    domain.LogFileLister
	loader    domain.ConfigLoader
	newReader RowReaderFactory
	log       zerolog.Logger
}

// NewValidateService creates a ValidateService with all required dependencies.
func NewValidateService(
	lister domain.LogFileLister,
	loader domain.ConfigLoader,
	newReader RowReaderFactory,
	log zerolog.Logger,
) *ValidateService {
	return &ValidateService{
		lister:    lister,
		loader:    loader,
		newReader: newReader,
		log:       log,
	}
}

// LoadConfig loads the configuration for dir.
func (s *ValidateService) LoadConfig(dir string) (domain.Config, error) {
	cfg, err := s.loader.Load(dir)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// FindLogFiles returns the activity log files in dir in discovery order.
func (s *ValidateService) FindLogFiles(dir string, cfg domain.Config) ([]string, error) {
	csvFiles, err := s.lister.ListCSV(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(csvFiles) == 0 {
		return nil, domain.ErrNoCSVFiles
	}

	var logs []string
	for _, name := range csvFiles {
		if cfg.MatchesLogFileName(name) {
			logs = append(logs, name)
		} else {
			s.log.Debug().Str("file", name).Msg("skipping csv file with non-log name")
		}
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("%w (expected 'LastnameFirstnameLog.csv')", domain.ErrNoActivityLogs)
	}

	s.log.Info().Int("csv_files", len(csvFiles)).Int("log_files", len(logs)).Msg("discovered activity logs")
	return logs, nil
}

// Run validates every activity log in dir. Validation problems become
// findings in the report; only I/O failures are returned as errors.
func (s *ValidateService) Run(ctx context.Context, dir string, cfg domain.Config) (*domain.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	files, err := s.FindLogFiles(dir, cfg)
	if err != nil {
		return nil, err
	}

	reader := s.newReader(cfg)
	checker := check.New(cfg)
	report := &domain.Report{Dir: dir}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := reader.ReadRows(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read log file %s: %w", name, err)
		}

		fr := checker.CheckFile(name, rows)
		s.log.Info().
			Str("file", name).
			Int("rows", len(rows)).
			Int("errors", fr.Errors()).
			Int("warnings", fr.Warnings()).
			Msg("validated log file")
		report.Files = append(report.Files, fr)
	}

	return report, nil
}

// Publish writes the report text verbatim to each sink in order.
func (s *ValidateService) Publish(report *domain.Report, sinks ...domain.ReportSink) error {
	text := report.Text()
	for _, sink := range sinks {
		if err := sink.WriteReport(text); err != nil {
			return err
		}
	}
	return nil
}

// CheckRow validates a single log row given as delimited text. rowIndex is
// 0-based so findings carry the line the row would occupy in a file.
func (s *ValidateService) CheckRow(line string, rowIndex int, cfg domain.Config) []domain.Finding {
	fields := s.newReader(cfg).SplitRow(line)
	return check.New(cfg).LogRow(fields, rowIndex)
}

package domain

import "errors"

var (
	ErrNoCSVFiles     = errors.New("no CSV files exist in the folder")
	ErrNoActivityLogs = errors.New("no CSV files match the activity log name format")
)

// LogFileLister lists candidate log files in a directory.
type LogFileLister interface {
	ListCSV(dir string) ([]string, error)
}

// RowReader reads a delimited file into rows of fields.
type RowReader interface {
	ReadRows(path string) ([][]string, error)
	SplitRow(line string) []string
}

// ReportSink receives the finished report text.
type ReportSink interface {
	WriteReport(text string) error
}

// ConfigLoader loads the run configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// GitInfo resolves version-control provenance for a directory.
type GitInfo interface {
	CommitHash(dir string) (string, error)
}

// RunEntry summarizes one validation run.
type RunEntry struct {
	ID           string `json:"id,omitempty"`
	Timestamp    string `json:"timestamp"`
	Dir          string `json:"dir"`
	CommitHash   string `json:"commit_hash,omitempty"`
	FilesChecked int    `json:"files_checked"`
	Errors       int    `json:"errors"`
	Warnings     int    `json:"warnings"`
}

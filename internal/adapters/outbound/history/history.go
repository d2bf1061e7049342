package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/logcheck/logcheck/internal/domain"
)

const (
	runsFile = ".logcheck/history/runs.json"

	// MaxRuns is how many runs are kept; older ones are dropped on save.
	MaxRuns = 100
)

// RunLog implements domain.RunHistory as a JSON array next to the logs.
type RunLog struct{}

func New() *RunLog {
	return &RunLog{}
}

// Save appends entry to the runs recorded for dir.
func (h *RunLog) Save(dir string, entry domain.RunEntry) error {
	runs, err := h.Load(dir)
	if err != nil {
		return err
	}

	runs = append(runs, entry)
	if len(runs) > MaxRuns {
		runs = runs[len(runs)-MaxRuns:]
	}

	fp := filepath.Join(dir, runsFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run history: %w", err)
	}

	return os.WriteFile(fp, data, 0644)
}

// Load returns the recorded runs for dir, oldest first. A folder that was
// never validated has no history and no error.
func (h *RunLog) Load(dir string) ([]domain.RunEntry, error) {
	fp := filepath.Join(dir, runsFile)

	data, err := os.ReadFile(fp)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading run history: %w", err)
	}

	var runs []domain.RunEntry
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", runsFile, err)
	}

	return runs, nil
}

package scanner

import (
	"os"
	"path/filepath"
)

const csvExt = ".csv"

// DirScanner implements domain.LogFileLister by reading one directory.
type DirScanner struct{}

func New() *DirScanner {
	return &DirScanner{}
}

// ListCSV returns the names of regular .csv files directly inside dir,
// sorted by name. Subdirectories are not descended.
func (s *DirScanner) ListCSV(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == csvExt {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

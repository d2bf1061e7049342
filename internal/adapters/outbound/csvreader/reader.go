package csvreader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	delimiter   = ","
	maxLineSize = 1024 * 1024
)

// Reader implements domain.RowReader for comma-delimited log files.
// Fields are split on every comma with no quoting, matching how the log
// files are written.
type Reader struct {
	dropEmpty bool
}

// New creates a Reader. With dropEmpty set, empty fields are discarded
// instead of kept in position, so "a,,b" reads as two fields.
func New(dropEmpty bool) *Reader {
	return &Reader{dropEmpty: dropEmpty}
}

// ReadRows reads every line of path into fields.
func (r *Reader) ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows [][]string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		rows = append(rows, r.SplitRow(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// SplitRow splits one line into fields. A blank line has no fields.
func (r *Reader) SplitRow(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return []string{}
	}

	fields := strings.Split(line, delimiter)
	if !r.dropEmpty {
		return fields
	}

	kept := fields[:0]
	for _, field := range fields {
		if field != "" {
			kept = append(kept, field)
		}
	}
	return kept
}

package sink

import (
	"fmt"
	"io"
	"os"
)

// Console echoes the report to a writer, normally stdout.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) WriteReport(text string) error {
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return fmt.Errorf("writing report to console: %w", err)
	}
	return nil
}

// File writes the report to a fixed path, replacing any previous report.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

func (f *File) WriteReport(text string) error {
	if err := os.WriteFile(f.path, []byte(text), 0644); err != nil {
		return fmt.Errorf("could not write report file %s: %w", f.path, err)
	}
	return nil
}

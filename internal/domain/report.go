package domain

import (
	"path/filepath"
	"strings"

	"github.com/fatih/camelcase"
)

// FileReport holds the findings for one log file, in row order.
type FileReport struct {
	File        string    `json:"file"`
	Owner       string    `json:"owner,omitempty"`
	Findings    []Finding `json:"findings"`
	RowsChecked int       `json:"rows_checked"`
	Stopped     bool      `json:"stopped"`
}

// Errors counts error findings.
func (r *FileReport) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.IsError() {
			n++
		}
	}
	return n
}

// Warnings counts warning findings.
func (r *FileReport) Warnings() int {
	return len(r.Findings) - r.Errors()
}

// Report is the aggregate outcome of one run, in discovery order.
type Report struct {
	Dir   string        `json:"dir"`
	Files []*FileReport `json:"files"`
}

// Totals returns error and warning counts across all files.
func (r *Report) Totals() (errs, warns int) {
	for _, f := range r.Files {
		errs += f.Errors()
		warns += f.Warnings()
	}
	return errs, warns
}

// Text renders the report exactly as it is written to every sink.
func (r *Report) Text() string {
	var b strings.Builder
	for _, f := range r.Files {
		b.WriteString("\n\nNow Validating Log File '")
		b.WriteString(f.File)
		b.WriteString("':\n\n")
		if len(f.Findings) == 0 {
			b.WriteString("No Problems Found.\n")
		}
		for _, finding := range f.Findings {
			b.WriteString(finding.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}

// OwnerFromFileName derives a display name from a log file name, so
// "SmithJohnLog.csv" becomes "Smith John".
func OwnerFromFileName(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	words := camelcase.Split(stem)
	if len(words) > 1 && words[len(words)-1] == "Log" {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

package domain

import "fmt"

// Severity indicates whether a finding blocks trust in the file.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation outcome. Line is 1-based; zero marks a
// file-level finding such as an empty file.
type Finding struct {
	Line     int      `json:"line,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ErrorAt returns an error finding for the 0-based row index.
func ErrorAt(row int, msg string) Finding {
	return Finding{Line: row + 1, Severity: SeverityError, Message: msg}
}

// WarningAt returns a warning finding for the 0-based row index.
func WarningAt(row int, msg string) Finding {
	return Finding{Line: row + 1, Severity: SeverityWarning, Message: msg}
}

// FileError returns a file-level error finding.
func FileError(msg string) Finding {
	return Finding{Severity: SeverityError, Message: msg}
}

func (f Finding) IsError() bool { return f.Severity == SeverityError }

// String renders the report line, e.g. "Line 4 Error: Note Contains Commas!".
func (f Finding) String() string {
	label := "Error"
	if f.Severity == SeverityWarning {
		label = "Warning"
	}
	if f.Line == 0 {
		return fmt.Sprintf("Log File %s: %s", label, f.Message)
	}
	return fmt.Sprintf("Line %d %s: %s", f.Line, label, f.Message)
}

package domain

import "fmt"

const (
	MinLogFields = 5
	MaxLogFields = 6
)

// LogEntry is one activity record taken from a log row. Fields stay as raw
// text; the rules decide what they mean.
type LogEntry struct {
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	GroupSize    string `json:"group_size"`
	ActivityCode string `json:"activity_code"`
	Note         string `json:"note,omitempty"`
}

// StructuralError reports a log row whose field count is wrong. Exactly one
// of Missing or Extra is non-zero.
type StructuralError struct {
	Missing int
	Extra   int
}

func (e *StructuralError) Error() string {
	if e.Missing > 0 {
		return fmt.Sprintf("Missing %d Cells.", e.Missing)
	}
	return fmt.Sprintf("You Have %d Extra Cells.", e.Extra)
}

// Finding converts the error into a report finding for the 0-based row.
func (e *StructuralError) Finding(row int) Finding {
	return ErrorAt(row, e.Error())
}

// BuildLogEntry positions fields into a LogEntry. It fails with a
// *StructuralError unless there are five or six fields.
func BuildLogEntry(fields []string) (LogEntry, error) {
	switch n := len(fields); {
	case n < MinLogFields:
		return LogEntry{}, &StructuralError{Missing: MinLogFields - n}
	case n > MaxLogFields:
		return LogEntry{}, &StructuralError{Extra: n - MaxLogFields}
	}

	entry := LogEntry{
		Date:         fields[0],
		StartTime:    fields[1],
		EndTime:      fields[2],
		GroupSize:    fields[3],
		ActivityCode: fields[4],
	}
	if len(fields) == MaxLogFields {
		entry.Note = fields[5]
	}
	return entry, nil
}

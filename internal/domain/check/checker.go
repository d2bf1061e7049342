package check

import (
	"fmt"

	"github.com/logcheck/logcheck/internal/domain"
)

const (
	usernameRowFields = 2
	classRowFields    = 1
)

type rowState int

const (
	expectUsernameRow rowState = iota
	expectClassRow
	expectLogRow
)

// Checker validates activity log rows against one configuration.
type Checker struct {
	courseID string
	rules    domain.Rules
}

// New creates a Checker for the given configuration.
func New(cfg domain.Config) *Checker {
	return &Checker{courseID: cfg.CourseID, rules: cfg.Rules()}
}

// CheckFile walks rows in order and stops at the first error. Findings for
// rows already checked, including warnings, are kept.
func (c *Checker) CheckFile(name string, rows [][]string) *domain.FileReport {
	report := &domain.FileReport{
		File:  name,
		Owner: domain.OwnerFromFileName(name),
	}

	if len(rows) == 0 {
		report.Findings = append(report.Findings, domain.FileError("File Is Empty!"))
		report.Stopped = true
		return report
	}

	state := expectUsernameRow
	for i, fields := range rows {
		var findings []domain.Finding
		switch state {
		case expectUsernameRow:
			findings = single(c.UsernameRow(fields))
			state = expectClassRow
		case expectClassRow:
			findings = single(c.ClassRow(fields))
			state = expectLogRow
		default:
			findings = c.LogRow(fields, i)
		}

		report.RowsChecked++
		report.Findings = append(report.Findings, findings...)
		if hasError(findings) {
			report.Stopped = true
			return report
		}
	}

	if state == expectClassRow {
		report.Findings = append(report.Findings, domain.FileError("File Ends Before The Class Row"))
		report.Stopped = true
	}
	return report
}

// UsernameRow checks the first row: LastName,FirstName.
func (c *Checker) UsernameRow(fields []string) *domain.Finding {
	const row = 0
	if len(fields) != usernameRowFields {
		return errorAt(row, "Row 1 Can Only Contain 2 Columns. Column 1 For 'LastName' And Column 2 For 'FirstName'. Anything Else In Row 1 Is Invalid")
	}
	lastName, firstName := fields[0], fields[1]
	if !domain.IsValidPersonName(firstName) {
		return errorAt(row, "First Name Is Invalid. Names Must Be Alphabetical Characters Only.")
	}
	if !domain.IsValidPersonName(lastName) {
		return errorAt(row, "Last Name Is Invalid. Names Must Be Alphabetical Characters Only.")
	}
	return nil
}

// ClassRow checks the second row holds exactly the course identifier.
func (c *Checker) ClassRow(fields []string) *domain.Finding {
	const row = 1
	if len(fields) != classRowFields {
		return errorAt(row, "Row 2 Can Only Contain 1 Column. Column 1 For 'Class Name'. Anything Else In Row 2 Is Invalid")
	}
	if fields[0] != c.courseID {
		return errorAt(row, fmt.Sprintf("Class Name MUST Be '%s'. Anything Else Is Invalid.", c.courseID))
	}
	return nil
}

// LogRow checks one activity row. The field count is checked before any
// field rule. Rules then run in a fixed order and the first error wins; a
// time-span warning is returned alongside whatever follows it.
func (c *Checker) LogRow(fields []string, row int) []domain.Finding {
	entry, err := domain.BuildLogEntry(fields)
	if err != nil {
		if se, ok := err.(*domain.StructuralError); ok {
			return []domain.Finding{se.Finding(row)}
		}
		return []domain.Finding{domain.ErrorAt(row, err.Error())}
	}

	span := c.rules.TimeSpan(entry.Date, entry.StartTime, entry.EndTime, row)
	if span.Err != nil {
		return []domain.Finding{*span.Err}
	}

	findings := span.Warnings
	if f := firstFailure(
		func() *domain.Finding { return c.rules.GroupSize(entry.GroupSize, row) },
		func() *domain.Finding { return c.rules.ActivityCode(entry.ActivityCode, row) },
		func() *domain.Finding {
			return c.rules.Note(entry.Note, domain.DecodeActivityCode(entry.ActivityCode), row)
		},
	); f != nil {
		findings = append(findings, *f)
	}
	return findings
}

func firstFailure(checks ...func() *domain.Finding) *domain.Finding {
	for _, check := range checks {
		if f := check(); f != nil {
			return f
		}
	}
	return nil
}

func errorAt(row int, msg string) *domain.Finding {
	f := domain.ErrorAt(row, msg)
	return &f
}

func single(f *domain.Finding) []domain.Finding {
	if f == nil {
		return nil
	}
	return []domain.Finding{*f}
}

func hasError(findings []domain.Finding) bool {
	for _, f := range findings {
		if f.IsError() {
			return true
		}
	}
	return false
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/logcheck/logcheck/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderIntro renders the banner shown before a run.
func RenderIntro(dir string) string {
	title := headerStyle.Render("logcheck")
	subtitle := dimStyle.Render("Validity Checks On Activity Log Files")
	where := fileStyle.Render(dir)
	return boxStyle.Render(title+"\n"+subtitle+"\n\n"+where) + "\n"
}

// RenderSummary renders per-file status lines and run totals.
func RenderSummary(report *domain.Report, reportPath string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	for _, f := range report.Files {
		var icon string
		switch {
		case f.Errors() > 0:
			icon = failStyle.Render("●")
		case f.Warnings() > 0:
			icon = warnStyle.Render("●")
		default:
			icon = passStyle.Render("●")
		}
		line := fmt.Sprintf("  %s %s", icon, f.File)
		if f.Owner != "" {
			line += "  " + dimStyle.Render(f.Owner)
		}
		b.WriteString(line + "\n")
	}

	errs, warns := report.Totals()
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d files", len(report.Files))))
	b.WriteString("  ")
	if errs > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errs)))
	} else {
		b.WriteString(passStyle.Render("0 errors"))
	}
	b.WriteString("  ")
	if warns > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warns)))
	} else {
		b.WriteString(dimStyle.Render("0 warnings"))
	}
	b.WriteString("\n\n")

	if reportPath != "" {
		b.WriteString("  " + dimStyle.Render("All log files in this folder have been validated. See "))
		b.WriteString(fileStyle.Render(reportPath))
		b.WriteString(dimStyle.Render(" for errors and warnings."))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderActivities renders the activity code table.
func RenderActivities() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Activity Codes") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 40)) + "\n\n")
	for _, k := range domain.Kinds() {
		code, _ := k.Code()
		fmt.Fprintf(&b, "    %s  %s\n", headerStyle.Render(string(code)), k.String())
	}
	return b.String()
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		stamp := e.Timestamp
		if len(stamp) > 10 {
			stamp = stamp[:10]
		}

		errStyle := passStyle
		if e.Errors > 0 {
			errStyle = failStyle
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(stamp),
			faintStyle.Render(hash),
			fmt.Sprintf("%d files", e.FilesChecked),
			errStyle.Render(fmt.Sprintf("%d errors", e.Errors)),
			warnStyle.Render(fmt.Sprintf("%d warnings", e.Warnings)),
		)

		if i > 0 {
			diff := e.Errors - entries[i-1].Errors
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

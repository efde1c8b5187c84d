// Package tui renders run reports and rule listings for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/confguard/confguard/internal/domain"
	"github.com/confguard/confguard/internal/domain/rules"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	ruleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)

	statusStyles = map[string]lipgloss.Style{
		domain.StatusPass: lipgloss.NewStyle().Bold(true).Foreground(success),
		domain.StatusWarn: lipgloss.NewStyle().Bold(true).Foreground(warning),
		domain.StatusFail: lipgloss.NewStyle().Bold(true).Foreground(danger),
	}
)

// RenderRunReport renders a validation run report as a styled TUI string.
func RenderRunReport(report *domain.RunReport) string {
	var b strings.Builder

	status := statusStyles[report.Status].Render(strings.ToUpper(report.Status))
	header := titleStyle.Render(report.ConfigPath) + "  " + status
	meta := dimStyle.Render(metaLine(report))
	b.WriteString(boxStyle.Render(header + "\n" + meta))
	b.WriteString("\n")

	b.WriteString("\n  " + schemaLine(report) + "\n")
	b.WriteString("  " + warningsLine(report) + "\n")

	if len(report.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range report.Warnings {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				warnStyle.Render("●"),
				ruleStyle.Render(w.Rule),
				w.Message,
			))
		}
	}

	return b.String()
}

func metaLine(report *domain.RunReport) string {
	parts := []string{"format: " + string(report.Format)}
	if report.Commit != "" {
		parts = append(parts, "commit: "+shortHash(report.Commit))
	}
	return strings.Join(parts, "  ")
}

func schemaLine(report *domain.RunReport) string {
	switch {
	case report.Schema == nil:
		return dimStyle.Render("schema      skipped")
	case report.Schema.Valid:
		return passStyle.Render("schema      valid")
	default:
		return failStyle.Render("schema      invalid") + "  " + report.Schema.Message
	}
}

func warningsLine(report *domain.RunReport) string {
	switch {
	case !report.RulesRun:
		return dimStyle.Render("practices   skipped")
	case len(report.Warnings) == 0:
		return passStyle.Render("practices   clean")
	default:
		return warnStyle.Render(fmt.Sprintf("practices   %d warning(s)", len(report.Warnings)))
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

// RenderRules renders the registered best-practice rules in registration
// order.
func RenderRules(registry rules.Registry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Best-practice rules") +
		"  " + dimStyle.Render(fmt.Sprintf("(%d)", len(registry))) + "\n\n")
	for _, rule := range registry {
		b.WriteString(fmt.Sprintf("  %s\n      %s\n",
			ruleStyle.Render(rule.Name),
			dimStyle.Render(rule.Description),
		))
	}
	return b.String()
}

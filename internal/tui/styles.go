// internal/tui/styles.go
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"scholar-portal/internal/models"
)

// Styles groups the lipgloss styles used across the wizard screens.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Missing  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Badge    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Missing:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Faint(true),
		Badge:    lipgloss.NewStyle().Padding(0, 1).Bold(true),
	}
}

var statusColors = map[models.ApplicationStatus]string{
	models.StatusDraft:             "245",
	models.StatusSubmitted:         "33",
	models.StatusUnderVerification: "214",
	models.StatusDocsRequired:      "203",
	models.StatusApproved:          "42",
	models.StatusRejected:          "196",
}

// StatusBadge renders an application status as a colored badge.
func (s Styles) StatusBadge(status models.ApplicationStatus) string {
	color, ok := statusColors[status]
	if !ok {
		color = "245"
	}
	return s.Badge.Foreground(lipgloss.Color("231")).Background(lipgloss.Color(color)).Render(string(status))
}

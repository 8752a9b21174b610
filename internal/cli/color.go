package cli

import (
	"github.com/Flyrell/coursecal/internal/conflict"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32"))
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }
func Success(text string) string { return successStyle.Render(text) }

// StatusColor renders a course status in its indicator color.
func StatusColor(s conflict.Status) string {
	switch s {
	case conflict.InSchedule:
		return Info(s.String())
	case conflict.Conflict:
		return Error(s.String())
	case conflict.Full:
		return Warning(s.String())
	default:
		return Success(s.String())
	}
}

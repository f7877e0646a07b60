package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title     lipgloss.Style
	bar       lipgloss.Style
	highlight lipgloss.Style
	done      lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	running   lipgloss.Style
	finished  lipgloss.Style
	graph     lipgloss.Style
	help      lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		bar:       lipgloss.NewStyle().Foreground(t.Bar),
		highlight: lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		done:      lipgloss.NewStyle().Foreground(t.Success),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		running:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		finished:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		graph:     lipgloss.NewStyle().Foreground(t.Bar).Padding(1, 0),
		help:      lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
	}
}

// ProgressBar renders a bar filled to percent of width.
func ProgressBar(percent float64, width int, fill lipgloss.Style) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fill.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

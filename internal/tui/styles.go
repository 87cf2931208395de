package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/linetype/internal/model"
	"github.com/verte-zerg/linetype/internal/session"
)

const wrongSpace = '•'

type styles struct {
	untyped   lipgloss.Style
	correct   lipgloss.Style
	incorrect lipgloss.Style
	next      lipgloss.Style
	box       lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	footer    lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	defaults := model.DefaultTheme()
	return styles{
		untyped:   lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(theme.Untyped, defaults.Untyped))),
		correct:   lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(theme.Correct, defaults.Correct))),
		incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(theme.Incorrect, defaults.Incorrect))),
		next:      lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(theme.Next, defaults.Next))).Underline(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(orDefault(theme.Correct, defaults.Correct))).
			Padding(1, 3).
			MarginTop(1),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(orDefault(theme.Next, defaults.Next))),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(orDefault(theme.Untyped, defaults.Untyped))),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
	}
}

func (s styles) cell(r rune, status session.Status) string {
	switch status {
	case session.Correct:
		return s.correct.Render(string(r))
	case session.Incorrect:
		if r == ' ' {
			r = wrongSpace
		}
		return s.incorrect.Render(string(r))
	case session.NextToType:
		return s.next.Render(string(r))
	default:
		return s.untyped.Render(string(r))
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

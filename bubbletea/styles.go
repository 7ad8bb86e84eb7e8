package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Topic      lipgloss.Style
	Art        lipgloss.Style
	Definition lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Banner     lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t asciiwiki.Theme) Styles {
	return Styles{
		Topic:      lipgloss.NewStyle().Foreground(ansiColor(t.Topic)).Bold(true),
		Art:        lipgloss.NewStyle().Foreground(ansiColor(t.Art)),
		Definition: lipgloss.NewStyle().Foreground(ansiColor(t.Definition)),
		Error:      lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:    lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:      lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:     lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Banner:     lipgloss.NewStyle().Foreground(ansiColor(t.Banner)).Reverse(true).PaddingLeft(1).PaddingRight(1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

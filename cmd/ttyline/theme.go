package main

import "github.com/charmbracelet/lipgloss"

var (
	ColorSuccess = lipgloss.Color("#22c55e")
	ColorWarning = lipgloss.Color("#eab308")
	ColorError   = lipgloss.Color("#ef4444")
	ColorMuted   = lipgloss.Color("#6b7280")
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// promptStyle colours the prompt with the configured colour, if any.
func (a *app) promptStyle(prompt string) string {
	if a.cfg.Prompt.Color == "" {
		return prompt
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(a.cfg.Prompt.Color)).Render(prompt)
}

// scoreStyle picks a style for a password score from 0 to 4.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score <= 1:
		return StyleError
	case score == 2:
		return StyleWarning
	}
	return StyleSuccess
}

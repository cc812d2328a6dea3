// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent output.
	SubtleColor = lipgloss.Color("#666666")

	// SuccessStyle formats the success outcome line.
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	// ErrorStyle formats the failure outcome line.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	// SubtleStyle formats secondary detail lines.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true)
)

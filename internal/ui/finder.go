package ui

import (
	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Force lipgloss to initialize and detect the terminal before any fuzzy
	// finder starts. This prevents ANSI escape sequences from leaking into
	// the finder input.
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

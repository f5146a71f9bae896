package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Truncate truncates text to maxLen with an ellipsis if needed.
// Uses lipgloss for proper ANSI-aware width handling.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	width := lipgloss.Width(text)
	if width <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}

	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

package formatter

import "github.com/charmbracelet/lipgloss"

// visibleWidth measures rendered width, ignoring ANSI styling.
func visibleWidth(s string) int {
	return lipgloss.Width(s)
}

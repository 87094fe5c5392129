package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindcli/grind/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DifficultyStyle returns the style used for a difficulty tag.
func DifficultyStyle(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen
	case domain.DifficultyMedium:
		return StyleYellow
	case domain.DifficultyHard:
		return StyleRed
	default:
		return StyleDim
	}
}

// Difficulty renders a colored difficulty tag.
func Difficulty(d domain.Difficulty) string {
	return DifficultyStyle(d).Render(string(d))
}

// GoalIndicator returns a colored marker for a goal's standing.
func GoalIndicator(remaining int) string {
	if remaining == 0 {
		return StyleGreen.Render("● MET")
	}
	return StyleYellow.Render(fmt.Sprintf("● %d TO GO", remaining))
}

// ReviewFlag marks records flagged for review.
func ReviewFlag(marked bool) string {
	if marked {
		return StylePurple.Render("★")
	}
	return " "
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

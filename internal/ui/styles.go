package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alfredjeanlab/diadi/internal/model"
)

// ANSI256 color codes used for help output.
const (
	colorAccent = 74  // blue
	colorCmd    = 250 // light gray
	colorMuted  = 245 // medium gray
)

// Badge colors per style category.
var (
	ActiveColor  = lipgloss.Color("#10B981") // Green
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	InfoColor    = lipgloss.Color("#60A5FA") // Blue
	NeutralColor = lipgloss.Color("#9CA3AF") // Gray
	// UnknownColor marks a category with no mapping so drift shows on screen.
	UnknownColor = lipgloss.Color("#EF4444") // Red

	badge = lipgloss.NewStyle().Bold(true)
)

var noColor bool

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorAccent, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// RenderCommand returns s styled as a command name (light gray).
func RenderCommand(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorCmd, s)
}

// CategoryColor returns the badge color for a style category.
// Unknown categories get UnknownColor, never a real category's color.
func CategoryColor(c model.Category) lipgloss.Color {
	switch c {
	case model.CategoryActive:
		return ActiveColor
	case model.CategoryWarning:
		return WarningColor
	case model.CategoryInfo:
		return InfoColor
	case model.CategoryNeutral:
		return NeutralColor
	}
	return UnknownColor
}

// RenderBadge renders a status label in its category color.
func RenderBadge(label string, c model.Category) string {
	if noColor {
		return label
	}
	return badge.Foreground(CategoryColor(c)).Render(label)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}

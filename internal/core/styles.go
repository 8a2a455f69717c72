// ABOUTME: Terminal styles for the interactive surface
// ABOUTME: Section headers and error lines rendered with lipgloss
package core

import "github.com/charmbracelet/lipgloss"

// Styles holds the styles used when printing turns
type Styles struct {
	Header lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the colored styles used on a terminal
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

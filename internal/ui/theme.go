// Package ui provides the terminal surface for the formkit CLI:
// lipgloss styles, the interactive confirmation prompt, and an
// indeterminate spinner with a headless fallback.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used across CLI output.
var (
	Primary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B21E6F", Dark: "#E94D98"})
	Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	Warn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	Error   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}).Bold(true)
)

// spinnerColor is the foreground used by the interactive spinner frames.
const spinnerColor = "#E94D98"

package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across screens and the
// filter sheet.
var Styles = struct {
	Title     lipgloss.Style // Bold accent color - for screen titles
	Crumb     lipgloss.Style // Breadcrumb trail line
	Box       lipgloss.Style // Standard box with rounded border
	Sheet     lipgloss.Style // Filter sheet box (highlight border)
	Selected  lipgloss.Style // Highlighted/selected items
	Normal    lipgloss.Style // Normal text
	Muted     lipgloss.Style // Dimmed text, hints
	Empty     lipgloss.Style // Empty state text
	Tab       lipgloss.Style // Inactive tab label
	TabActive lipgloss.Style // Active tab label
	Status    lipgloss.Style // Status line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Crumb: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2).
		Margin(1),
	Sheet: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 2),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

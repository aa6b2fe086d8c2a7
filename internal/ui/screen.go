package ui

import tea "github.com/charmbracelet/bubbletea"

// Screen is the unit of navigation; a destination the back stack carries.
// Screens update in place and return only a command: the record wrapping a
// screen keeps its key for the screen's whole life on the stack, so updates
// must never replace the destination.
type Screen interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	// Title labels the screen in the tab bar and breadcrumb trail.
	Title() string
}

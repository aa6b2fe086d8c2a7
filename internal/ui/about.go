package ui

import tea "github.com/charmbracelet/bubbletea"

// AboutScreen is a static destination reachable from the tab bar.
type AboutScreen struct{}

// Ensure AboutScreen implements Screen.
var _ Screen = (*AboutScreen)(nil)

// NewAboutScreen creates the about screen.
func NewAboutScreen() *AboutScreen { return &AboutScreen{} }

// Init implements Screen.
func (a *AboutScreen) Init() tea.Cmd { return nil }

// Update implements Screen.
func (a *AboutScreen) Update(tea.Msg) tea.Cmd { return nil }

// View implements Screen.
func (a *AboutScreen) View() string {
	content := Styles.Title.Render("navstack") + "\n\n"
	content += Styles.Normal.Render("A keyed navigation back stack with a reactive TUI on top.") + "\n"
	content += Styles.Normal.Render("Every screen you visit lives on the stack; esc walks back one") + "\n"
	content += Styles.Normal.Render("step, b collapses the history to the browse screen.") + "\n\n"
	content += Styles.Muted.Render("esc: back  b: browse")
	return Styles.Box.Render(content)
}

// Title implements Screen.
func (a *AboutScreen) Title() string { return "About" }

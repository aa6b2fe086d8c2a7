package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FilterSheet is the modal query input shown over the browse screen.
// Enter applies the query (an empty query clears the filter); Esc dismisses
// without changing anything.
type FilterSheet struct {
	input textinput.Model
}

// NewFilterSheet creates a sheet pre-filled with the currently applied
// query.
func NewFilterSheet(current string) *FilterSheet {
	ti := textinput.New()
	ti.Placeholder = "name or kind"
	ti.Width = 30
	ti.SetValue(current)
	ti.Focus()
	return &FilterSheet{input: ti}
}

// Init returns the cursor blink command.
func (f *FilterSheet) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles sheet input in place and returns resulting commands.
func (f *FilterSheet) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return func() tea.Msg { return DismissSheetMsg{} }
		case "enter":
			query := strings.TrimSpace(f.input.Value())
			return func() tea.Msg { return FilterAppliedMsg{Query: query} }
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the sheet box.
func (f *FilterSheet) View() string {
	content := Styles.Title.Render("Filter") + "\n\n"
	content += f.input.View() + "\n\n"
	content += Styles.Muted.Render("Enter: apply  Esc: cancel")
	return Styles.Sheet.Render(content)
}

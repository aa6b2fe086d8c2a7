package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navstack/internal/catalog"
	"navstack/internal/trace"
)

// AppModel is the root model. It routes key events, hosts the filter sheet
// overlay, and renders whatever screen the navigator says is on top.
type AppModel struct {
	Nav    *Navigator
	Browse *BrowseScreen
	Sheet  *FilterSheet // non-nil while the filter sheet is open
	Keys   KeyMap
	Help   help.Model
	Status string

	cat    *catalog.Catalog
	width  int
	height int
}

// Ensure AppModel implements tea.Model.
var _ tea.Model = (*AppModel)(nil)

// NewAppModel creates the root model with the browse screen as the
// navigation root.
func NewAppModel(cat *catalog.Catalog, tracer *trace.NavTracer) *AppModel {
	browse := NewBrowseScreen(cat)
	return &AppModel{
		Nav:    NewNavigator(browse, tracer),
		Browse: browse,
		Keys:   DefaultKeyMap(),
		Help:   help.New(),
		cat:    cat,
	}
}

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	return m.Nav.Current().Init()
}

// Update implements tea.Model.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.Help.Width = msg.Width
		return m, m.Browse.Update(msg)

	case PushScreenMsg:
		m.Status = ""
		m.Nav.Push(msg.Screen)
		return m, msg.Screen.Init()

	case BackMsg:
		if !m.Nav.AtRoot() {
			m.Nav.Back()
		}
		return m, nil

	case GoHomeMsg:
		if n := m.Nav.UnwindToRoot(); n > 0 {
			m.Status = fmt.Sprintf("Back to %s", m.Nav.Current().Title())
		}
		return m, nil

	case ShowAboutMsg:
		if _, ok := m.Nav.Current().(*AboutScreen); ok {
			return m, nil
		}
		about := NewAboutScreen()
		m.Nav.Push(about)
		return m, about.Init()

	case ShowFilterMsg:
		m.Sheet = NewFilterSheet(m.Browse.Query())
		return m, m.Sheet.Init()

	case DismissSheetMsg:
		m.Sheet = nil
		return m, nil

	case FilterAppliedMsg:
		m.Sheet = nil
		m.Browse.ApplyFilter(msg.Query)
		if msg.Query == "" {
			m.Status = "Filter cleared"
		} else {
			m.Status = fmt.Sprintf("Filter: %q", msg.Query)
		}
		return m, nil

	case tea.KeyMsg:
		// The sheet captures all keys while open, including esc.
		if m.Sheet != nil {
			return m, m.Sheet.Update(msg)
		}
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		case key.Matches(msg, m.Keys.Back):
			if !m.Nav.AtRoot() {
				return m, func() tea.Msg { return BackMsg{} }
			}
			return m, nil
		case key.Matches(msg, m.Keys.Home):
			return m, func() tea.Msg { return GoHomeMsg{} }
		case key.Matches(msg, m.Keys.About):
			return m, func() tea.Msg { return ShowAboutMsg{} }
		case key.Matches(msg, m.Keys.Filter):
			if _, ok := m.Nav.Current().(*BrowseScreen); ok {
				return m, func() tea.Msg { return ShowFilterMsg{} }
			}
			return m, nil
		case key.Matches(msg, m.Keys.Select):
			if b, ok := m.Nav.Current().(*BrowseScreen); ok {
				if item, ok := b.SelectedItem(); ok {
					return m, func() tea.Msg {
						return PushScreenMsg{Screen: NewDetailScreen(m.cat, item)}
					}
				}
				return m, nil
			}
		}
		return m, m.Nav.Current().Update(msg)
	}

	// Non-key messages (cursor blink, ticks) go to the sheet when open,
	// otherwise to the active screen.
	if m.Sheet != nil {
		return m, m.Sheet.Update(msg)
	}
	return m, m.Nav.Current().Update(msg)
}

// View implements tea.Model.
func (m *AppModel) View() string {
	var b strings.Builder
	b.WriteString(Styles.Crumb.Render(strings.Join(m.Nav.Breadcrumbs(), " > ")) + "\n")
	b.WriteString(m.Nav.Current().View() + "\n")
	if m.Sheet != nil {
		b.WriteString(m.Sheet.View() + "\n")
	}
	b.WriteString(m.tabBar() + "\n")
	if m.Status != "" {
		b.WriteString(Styles.Status.Render(m.Status) + "\n")
	}
	b.WriteString(m.Help.View(m.Keys))
	return b.String()
}

// tabBar renders the bottom navigation: Browse is active for every screen
// on the browse history; About when the about screen is on top.
func (m *AppModel) tabBar() string {
	browse, about := Styles.TabActive, Styles.Tab
	if _, ok := m.Nav.Current().(*AboutScreen); ok {
		browse, about = Styles.Tab, Styles.TabActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		browse.Render("[b] Browse"),
		about.Render("[a] About"),
	)
}

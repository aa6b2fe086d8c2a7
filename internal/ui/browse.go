package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navstack/internal/catalog"
)

// catalogItem adapts catalog.Item to list.Item.
type catalogItem struct {
	catalog.Item
}

func (c catalogItem) FilterValue() string { return c.Name }
func (c catalogItem) Title() string       { return c.Name }
func (c catalogItem) Description() string { return c.Kind }

// BrowseScreen is the root screen: the filterable catalog list. Filtering
// goes through the filter sheet rather than the list's own filter prompt,
// so the applied query survives navigation away and back.
type BrowseScreen struct {
	cat     *catalog.Catalog
	list    list.Model
	visible []catalog.Item
	query   string
}

// Ensure BrowseScreen implements Screen.
var _ Screen = (*BrowseScreen)(nil)

// NewBrowseScreen creates the browse screen over cat with no filter applied.
func NewBrowseScreen(cat *catalog.Catalog) *BrowseScreen {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText))
	delegate.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	b := &BrowseScreen{cat: cat, list: l}
	b.ApplyFilter("")
	return b
}

// ApplyFilter replaces the visible items with those matching query.
func (b *BrowseScreen) ApplyFilter(query string) {
	b.query = query
	b.visible = b.cat.Filter(query)
	items := make([]list.Item, len(b.visible))
	for i, it := range b.visible {
		items[i] = catalogItem{Item: it}
	}
	b.list.SetItems(items)
	b.list.ResetSelected()
}

// Query returns the currently applied filter query.
func (b *BrowseScreen) Query() string { return b.query }

// SelectedItem returns the highlighted item, if any.
func (b *BrowseScreen) SelectedItem() (catalog.Item, bool) {
	idx := b.list.Index()
	if idx < 0 || idx >= len(b.visible) {
		return catalog.Item{}, false
	}
	return b.visible[idx], true
}

// Init implements Screen.
func (b *BrowseScreen) Init() tea.Cmd { return nil }

// Update implements Screen. The list handles j/k/g/G movement natively;
// enter is handled at the app level.
func (b *BrowseScreen) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		b.list.SetWidth(size.Width)
		b.list.SetHeight(size.Height - 6) // Reserve space for chrome
		return nil
	}
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return cmd
}

// View implements Screen.
func (b *BrowseScreen) View() string {
	// Default dimensions when no WindowSizeMsg has arrived (tests).
	if b.list.Width() == 0 {
		b.list.SetWidth(80)
	}
	if b.list.Height() == 0 {
		b.list.SetHeight(20)
	}

	var out strings.Builder
	title := fmt.Sprintf("Field Guide (%d)", len(b.visible))
	if b.query != "" {
		title += Styles.Muted.Render(fmt.Sprintf("  filter: %q", b.query))
	}
	out.WriteString(Styles.Title.Render(title) + "\n\n")
	if len(b.visible) == 0 {
		out.WriteString(Styles.Empty.Render("No items match the filter. Press / to change it."))
		return out.String()
	}
	out.WriteString(b.list.View())
	return out.String()
}

// Title implements Screen.
func (b *BrowseScreen) Title() string { return "Browse" }

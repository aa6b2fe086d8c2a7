package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"navstack/internal/catalog"
)

// DetailScreen shows a single catalog item. Pressing n pushes the next item
// of the same kind, so detail screens can stack arbitrarily deep.
type DetailScreen struct {
	cat  *catalog.Catalog
	item catalog.Item
}

// Ensure DetailScreen implements Screen.
var _ Screen = (*DetailScreen)(nil)

// NewDetailScreen creates a detail screen for item.
func NewDetailScreen(cat *catalog.Catalog, item catalog.Item) *DetailScreen {
	return &DetailScreen{cat: cat, item: item}
}

// Item returns the displayed item.
func (d *DetailScreen) Item() catalog.Item { return d.item }

// nextOfKind returns the item following d.item among items of the same
// kind, wrapping around. False when d.item is the only one of its kind.
func (d *DetailScreen) nextOfKind() (catalog.Item, bool) {
	same := d.cat.Filter(d.item.Kind)
	if len(same) < 2 {
		return catalog.Item{}, false
	}
	for i, it := range same {
		if it.Name == d.item.Name {
			return same[(i+1)%len(same)], true
		}
	}
	return catalog.Item{}, false
}

// Init implements Screen.
func (d *DetailScreen) Init() tea.Cmd { return nil }

// Update implements Screen.
func (d *DetailScreen) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "n" {
		if next, ok := d.nextOfKind(); ok {
			return func() tea.Msg {
				return PushScreenMsg{Screen: NewDetailScreen(d.cat, next)}
			}
		}
	}
	return nil
}

// View implements Screen.
func (d *DetailScreen) View() string {
	content := Styles.Title.Render(d.item.Name) + "\n"
	content += Styles.Muted.Render(d.item.Kind) + "\n\n"
	content += Styles.Normal.Render(d.item.Blurb)
	if _, ok := d.nextOfKind(); ok {
		content += "\n\n" + Styles.Muted.Render(fmt.Sprintf("n: next %s  esc: back", d.item.Kind))
	} else {
		content += "\n\n" + Styles.Muted.Render("esc: back")
	}
	return Styles.Box.Render(content)
}

// Title implements Screen.
func (d *DetailScreen) Title() string { return d.item.Name }

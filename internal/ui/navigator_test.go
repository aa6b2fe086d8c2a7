package ui

import (
	"testing"

	"navstack/internal/catalog"
)

func testNavigator(t *testing.T) (*Navigator, *BrowseScreen) {
	t.Helper()
	browse := NewBrowseScreen(catalog.Builtin())
	return NewNavigator(browse, nil), browse
}

func TestNavigatorStartsAtRoot(t *testing.T) {
	nav, browse := testNavigator(t)
	if !nav.AtRoot() {
		t.Fatal("expected navigator to start at root")
	}
	if nav.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", nav.Depth())
	}
	if nav.Current() != Screen(browse) {
		t.Errorf("expected browse as current, got %T", nav.Current())
	}
}

func TestNavigatorPushAndBack(t *testing.T) {
	nav, browse := testNavigator(t)
	detail := NewDetailScreen(catalog.Builtin(), catalog.Builtin().Items[0])

	rec := nav.Push(detail)
	if rec.Key() == "" {
		t.Error("pushed record should have a minted key")
	}
	if nav.Depth() != 2 || nav.Current() != Screen(detail) {
		t.Fatalf("expected detail on top at depth 2, got %T at %d", nav.Current(), nav.Depth())
	}

	if !nav.Back() {
		t.Fatal("Back should succeed above the root")
	}
	if nav.Depth() != 1 || nav.Current() != Screen(browse) {
		t.Errorf("expected browse at depth 1 after back, got %T at %d", nav.Current(), nav.Depth())
	}
}

func TestNavigatorUnwindToRoot(t *testing.T) {
	nav, browse := testNavigator(t)
	cat := catalog.Builtin()
	nav.Push(NewDetailScreen(cat, cat.Items[0]))
	nav.Push(NewDetailScreen(cat, cat.Items[1]))
	nav.Push(NewAboutScreen())

	popped := nav.UnwindToRoot()
	if popped != 3 {
		t.Errorf("expected 3 screens popped, got %d", popped)
	}
	if !nav.AtRoot() || nav.Current() != Screen(browse) {
		t.Errorf("expected browse at root, got %T at depth %d", nav.Current(), nav.Depth())
	}

	// Unwinding at root is a no-op.
	if popped := nav.UnwindToRoot(); popped != 0 {
		t.Errorf("expected no pops at root, got %d", popped)
	}
}

func TestNavigatorUnwindToPredicate(t *testing.T) {
	nav, _ := testNavigator(t)
	cat := catalog.Builtin()
	target := NewDetailScreen(cat, cat.Items[0])
	nav.Push(target)
	nav.Push(NewDetailScreen(cat, cat.Items[1]))
	nav.Push(NewDetailScreen(cat, cat.Items[2]))

	popped := nav.UnwindTo(func(s Screen) bool { return s == Screen(target) })
	if popped != 2 {
		t.Errorf("expected 2 screens popped, got %d", popped)
	}
	if nav.Current() != Screen(target) {
		t.Errorf("expected target detail on top, got %T", nav.Current())
	}
}

func TestNavigatorBreadcrumbs(t *testing.T) {
	nav, _ := testNavigator(t)
	cat := catalog.Builtin()
	nav.Push(NewDetailScreen(cat, catalog.Item{Name: "Douglas Fir", Kind: "tree"}))
	nav.Push(NewAboutScreen())

	crumbs := nav.Breadcrumbs()
	want := []string{"Browse", "Douglas Fir", "About"}
	if len(crumbs) != len(want) {
		t.Fatalf("expected %d crumbs, got %v", len(want), crumbs)
	}
	for i := range want {
		if crumbs[i] != want[i] {
			t.Errorf("crumb %d: expected %q, got %q", i, want[i], crumbs[i])
		}
	}
}

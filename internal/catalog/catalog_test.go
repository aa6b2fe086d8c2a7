package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinIsNonEmpty(t *testing.T) {
	c := Builtin()
	if len(c.Items) == 0 {
		t.Fatal("builtin catalog is empty")
	}
	for i, it := range c.Items {
		if it.Name == "" || it.Kind == "" {
			t.Errorf("item %d missing name or kind: %+v", i, it)
		}
	}
}

func TestFilterMatchesNameAndKind(t *testing.T) {
	c := Builtin()

	ferns := c.Filter("fern")
	if len(ferns) != 2 {
		t.Fatalf("expected 2 fern matches, got %d", len(ferns))
	}

	// Case-insensitive name match.
	jays := c.Filter("steller")
	if len(jays) != 1 || jays[0].Name != "Steller's Jay" {
		t.Errorf("expected Steller's Jay, got %v", jays)
	}

	if got := c.Filter("no-such-item"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	c := Builtin()
	if got := c.Filter("  "); len(got) != len(c.Items) {
		t.Errorf("blank query should return all %d items, got %d", len(c.Items), len(got))
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	data := `
[[item]]
name = "Western Hemlock"
kind = "tree"
blurb = "Drooping leader, tiny cones."

[[item]]
name = "Licorice Fern"
kind = "fern"
blurb = "Grows on mossy maple trunks."
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(c.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(c.Items))
	}
	if c.Items[0].Name != "Western Hemlock" {
		t.Errorf("unexpected first item: %+v", c.Items[0])
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Error("expected error for catalog with no items")
	}
}

func TestLoadUsesEnvVar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	data := "[[item]]\nname = \"Salal\"\nkind = \"shrub\"\nblurb = \"Leathery leaves.\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	os.Setenv("NAVSTACK_CATALOG", path)
	defer os.Unsetenv("NAVSTACK_CATALOG")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Name != "Salal" {
		t.Errorf("expected env catalog, got %+v", c.Items)
	}
}

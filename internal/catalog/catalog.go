// Package catalog provides the items the demo app browses. A catalog is
// loaded from a TOML file named by the NAVSTACK_CATALOG env var, falling
// back to a small built-in field guide.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Item is one browsable catalog entry.
type Item struct {
	Name  string `toml:"name"`
	Kind  string `toml:"kind"`
	Blurb string `toml:"blurb"`
}

// Catalog is an ordered set of items.
type Catalog struct {
	Items []Item `toml:"item"`
}

// Load returns the catalog from NAVSTACK_CATALOG if set, else the built-in
// default.
func Load() (*Catalog, error) {
	if path := os.Getenv("NAVSTACK_CATALOG"); path != "" {
		return LoadFile(path)
	}
	return Builtin(), nil
}

// LoadFile decodes a TOML catalog file. The file holds repeated [[item]]
// tables with name, kind, and blurb keys.
func LoadFile(path string) (*Catalog, error) {
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	if len(c.Items) == 0 {
		return nil, fmt.Errorf("catalog %q: no items", path)
	}
	return &c, nil
}

// Builtin returns the default catalog shipped with the demo.
func Builtin() *Catalog {
	return &Catalog{Items: []Item{
		{Name: "Douglas Fir", Kind: "tree", Blurb: "Tall evergreen conifer with soft needles and distinctive three-pointed bracts on its cones."},
		{Name: "Red Alder", Kind: "tree", Blurb: "Fast-growing deciduous tree common along streams; bark hosts pale lichen patches."},
		{Name: "Sword Fern", Kind: "fern", Blurb: "Hardy evergreen fern with long blade-shaped fronds, abundant in shaded understory."},
		{Name: "Maidenhair Fern", Kind: "fern", Blurb: "Delicate fern with fan-shaped leaflets on dark wiry stems, found near seeps."},
		{Name: "Varied Thrush", Kind: "bird", Blurb: "Orange-and-slate songbird of dense conifer forest; song is a single eerie whistled note."},
		{Name: "Steller's Jay", Kind: "bird", Blurb: "Crested blue-black jay, bold around camps and loud in the canopy."},
		{Name: "Pacific Wren", Kind: "bird", Blurb: "Tiny dark wren with an outsized, tumbling song delivered from root wads."},
		{Name: "Chanterelle", Kind: "fungus", Blurb: "Golden funnel-shaped mushroom with false gills, fruiting in fall under conifers."},
		{Name: "Turkey Tail", Kind: "fungus", Blurb: "Banded shelf fungus on dead hardwood, ubiquitous year round."},
	}}
}

// Filter returns the items whose name or kind contains q,
// case-insensitively. An empty query returns everything.
func (c *Catalog) Filter(q string) []Item {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return c.Items
	}
	var out []Item
	for _, it := range c.Items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.Kind), q) {
			out = append(out, it)
		}
	}
	return out
}

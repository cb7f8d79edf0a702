// Package visualizer draws classical triangle constructions onto an
// abstract drawing surface.
//
// Visualizers are stateless: every call recomputes its construction from
// the triangle it is given. They are collected into named groups, and the
// groups into a catalog whose entries are switched on and off at runtime.
package visualizer

import (
	"strings"

	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/pkg/errors"
)

// ErrUnknownKey is returned when a catalog key names no group or entry
var ErrUnknownKey = errors.New("unknown visualizer key")

// Visualizer draws one construction of a triangle
type Visualizer interface {
	Visualize(s Surface, t *geometry.Triangle)
}

// Entry is a named, switchable visualizer within a group
type Entry struct {
	Name       string
	Key        string
	Active     bool
	Visualizer Visualizer
}

// State summarizes how many entries of a group are active
type State int

const (
	StateNone State = iota
	StatePartial
	StateAll
)

// Group is a composite visualizer drawing its active entries in order
type Group struct {
	Name    string
	Key     string
	entries []*Entry
}

// NewGroup creates an empty group
func NewGroup(name, key string) *Group {
	return &Group{Name: name, Key: key}
}

// Add appends an inactive entry and returns the group for chaining
func (g *Group) Add(name, key string, v Visualizer) *Group {
	g.entries = append(g.entries, &Entry{Name: name, Key: key, Visualizer: v})
	return g
}

// Entries returns the group's entries in drawing order
func (g *Group) Entries() []*Entry {
	return g.entries
}

// Entry returns the entry with the given key, or nil
func (g *Group) Entry(key string) *Entry {
	for _, e := range g.entries {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Visualize draws every active entry
func (g *Group) Visualize(s Surface, t *geometry.Triangle) {
	for _, e := range g.entries {
		if e.Active {
			e.Visualizer.Visualize(s, t)
		}
	}
}

// SetAll switches every entry on or off
func (g *Group) SetAll(active bool) {
	for _, e := range g.entries {
		e.Active = active
	}
}

// ActiveCount returns the number of active entries
func (g *Group) ActiveCount() int {
	n := 0
	for _, e := range g.entries {
		if e.Active {
			n++
		}
	}
	return n
}

// State reports whether none, some or all entries are active
func (g *Group) State() State {
	switch n := g.ActiveCount(); {
	case n == 0:
		return StateNone
	case n == len(g.entries):
		return StateAll
	default:
		return StatePartial
	}
}

// Catalog is the ordered list of groups shown to the user
type Catalog []*Group

// Visualize draws the active entries of every group
func (c Catalog) Visualize(s Surface, t *geometry.Triangle) {
	for _, g := range c {
		g.Visualize(s, t)
	}
}

// Group returns the group with the given key, or nil
func (c Catalog) Group(key string) *Group {
	for _, g := range c {
		if g.Key == key {
			return g
		}
	}
	return nil
}

// SetActive switches a whole group ("excircles") or a single entry
// ("excircles.tangents") on or off.
func (c Catalog) SetActive(path string, active bool) error {
	groupKey, entryKey, hasEntry := strings.Cut(path, ".")
	g := c.Group(groupKey)
	if g == nil {
		return errors.Wrapf(ErrUnknownKey, "group %q", groupKey)
	}
	if !hasEntry {
		g.SetAll(active)
		return nil
	}
	e := g.Entry(entryKey)
	if e == nil {
		return errors.Wrapf(ErrUnknownKey, "entry %q in group %q", entryKey, groupKey)
	}
	e.Active = active
	return nil
}

// SetAll switches every entry of every group on or off
func (c Catalog) SetAll(active bool) {
	for _, g := range c {
		g.SetAll(active)
	}
}

// Paths returns every "group.entry" path in catalog order
func (c Catalog) Paths() []string {
	var paths []string
	for _, g := range c {
		for _, e := range g.entries {
			paths = append(paths, g.Key+"."+e.Key)
		}
	}
	return paths
}

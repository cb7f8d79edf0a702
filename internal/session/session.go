// Package session holds the interactive state of the viewer: the
// triangle being edited, the catalog, and pointer handling for vertex
// dragging and panning.
package session

import (
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/philipparndt/trivis/pkg/visualizer"
)

// HitRadius is how close the pointer must be to a vertex to grab it
const HitRadius = 5

// Button identifies a pointer button
type Button int

const (
	Primary Button = iota
	Secondary
	Tertiary
)

// InteractionState holds pointer state between events. selected is a
// valid vertex index whenever dragging is set. lastPan follows every
// move so a pan resumed after a drag starts from the current position.
type InteractionState struct {
	selected   int // vertex index or visualizer.NoSelection
	dragging   bool
	panning    bool
	lastPan    geometry.Point
	pointerPos geometry.Point
}

// Session owns the triangle and routes pointer events to it
type Session struct {
	Triangle *geometry.Triangle
	Catalog  visualizer.Catalog
	Frame    visualizer.Frame

	interaction InteractionState
	onChange    func()
}

// New creates a session for t with the default catalog and frame
func New(t *geometry.Triangle) *Session {
	return &Session{
		Triangle:    t,
		Catalog:     visualizer.DefaultCatalog(),
		Frame:       visualizer.DefaultFrame(),
		interaction: InteractionState{selected: visualizer.NoSelection},
	}
}

// NewDefault creates a session with the initial triangle of the viewer
func NewDefault() *Session {
	return New(geometry.NewTriangle(
		geometry.NewPoint(100, 100),
		geometry.NewPoint(100, 300),
		geometry.NewPoint(200, 200),
	))
}

// SetOnChange registers a callback fired after the triangle changes
func (s *Session) SetOnChange(f func()) {
	s.onChange = f
}

// Selected returns the selected vertex index or visualizer.NoSelection
func (s *Session) Selected() int {
	return s.interaction.selected
}

// Dragging reports whether a vertex is being dragged
func (s *Session) Dragging() bool {
	return s.interaction.dragging
}

// Panning reports whether the view is being panned
func (s *Session) Panning() bool {
	return s.interaction.panning
}

// PointerPosition returns the last pointer position seen
func (s *Session) PointerPosition() geometry.Point {
	return s.interaction.pointerPos
}

// Paint draws the current frame onto surface
func (s *Session) Paint(surface visualizer.Surface) {
	s.Frame.Paint(surface, s.Triangle, s.Catalog, s.interaction.selected)
}

// HitTest returns the vertex within HitRadius of p. When several
// vertices are in range the one with the highest index wins.
func (s *Session) HitTest(p geometry.Point) int {
	hit := visualizer.NoSelection
	for i, v := range s.Triangle.Vertices() {
		if v.DistanceSquared(p) < HitRadius*HitRadius {
			hit = i
		}
	}
	return hit
}

// PointerDown handles a button press at p and reports whether a repaint
// is needed
func (s *Session) PointerDown(button Button, p geometry.Point) bool {
	s.interaction.pointerPos = p

	switch button {
	case Primary:
		previous := s.interaction.selected
		s.interaction.selected = s.HitTest(p)
		s.interaction.dragging = s.interaction.selected != visualizer.NoSelection
		return previous != s.interaction.selected
	case Secondary, Tertiary:
		s.interaction.panning = true
		s.interaction.lastPan = p
	}
	return false
}

// PointerMove handles pointer motion and reports whether a repaint is
// needed
func (s *Session) PointerMove(p geometry.Point) bool {
	s.interaction.pointerPos = p
	delta := p.Sub(s.interaction.lastPan)
	s.interaction.lastPan = p

	if s.interaction.dragging {
		v := s.Triangle.Vertices()
		v[s.interaction.selected] = p
		s.Triangle.SetVertices(v[0], v[1], v[2])
		s.changed()
		return true
	}

	if s.interaction.panning {
		if delta.IsZero() {
			return false
		}
		s.Triangle.Translate(delta)
		s.changed()
		return true
	}

	return false
}

// PointerUp releases the state held by button
func (s *Session) PointerUp(button Button) {
	switch button {
	case Primary:
		s.interaction.dragging = false
	case Secondary, Tertiary:
		s.interaction.panning = false
	}
}

// Reset replaces the vertices and clears the selection
func (s *Session) Reset(a, b, c geometry.Point) {
	s.Triangle.SetVertices(a, b, c)
	s.interaction = InteractionState{selected: visualizer.NoSelection}
	s.changed()
}

func (s *Session) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

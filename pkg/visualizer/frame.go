package visualizer

import (
	"image/color"

	"github.com/philipparndt/trivis/pkg/geometry"
)

const (
	// LabelDistance is how far labels sit outside their vertex, measured
	// away from the centroid
	LabelDistance = 25
	// SelectionRadius is the radius of the ring around the selected vertex
	SelectionRadius = 10
)

var vertexNames = [3]string{"A", "B", "C"}

// NoSelection is passed to Frame.Paint when no vertex is selected
const NoSelection = -1

// Frame paints a complete view: background, constructions, the triangle
// and its labels
type Frame struct {
	Background  color.Color
	Side        Pen
	Vertex      Brush
	Selection   Pen
	Label       Brush
	LabelActive Brush
	// LabelOffset shifts labels so the glyph is centered on its anchor
	LabelOffset geometry.Point
}

// DefaultFrame returns the frame style of the viewer
func DefaultFrame() Frame {
	return Frame{
		Background:  White,
		Side:        NewPen(Red).WithWidth(2),
		Vertex:      NewBrush(Blue),
		Selection:   NewPen(Green),
		Label:       NewBrush(Blue),
		LabelActive: NewBrush(Green),
		LabelOffset: geometry.NewPoint(6, 6),
	}
}

// Paint draws the frame. Constructions are skipped for degenerate
// triangles. selected is a vertex index or NoSelection.
func (f Frame) Paint(s Surface, t *geometry.Triangle, catalog Catalog, selected int) {
	s.Clear(f.Background)

	if t.IsTriangle() {
		catalog.Visualize(s, t)
	}

	a, b, c := t.A(), t.B(), t.C()
	s.DrawLine(a, b, f.Side)
	s.DrawLine(b, c, f.Side)
	s.DrawLine(c, a, f.Side)

	vertices := t.Vertices()
	for _, p := range vertices {
		s.FillEllipse(p, MarkerRadius, f.Vertex)
	}

	if selected >= 0 && selected < len(vertices) {
		s.DrawEllipse(vertices[selected], SelectionRadius, f.Selection)
	}

	centroid := t.Centroid()
	for i, p := range vertices {
		brush := f.Label
		if i == selected {
			brush = f.LabelActive
		}
		s.DrawText(vertexNames[i], LabelPosition(p, centroid).Sub(f.LabelOffset), brush)
	}
}

// LabelPosition places a label LabelDistance away from the vertex on the
// ray from the centroid
func LabelPosition(vertex, centroid geometry.Point) geometry.Point {
	return vertex.Add(vertex.Sub(centroid).Normalize().Mul(LabelDistance))
}

package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/philipparndt/trivis/pkg/visualizer"
)

// LabelSize is the text size of vertex labels
const LabelSize = 12

// ObjectSurface collects fyne canvas objects for one frame. Dashed
// strokes become one line per dash since canvas.Line draws solid only.
type ObjectSurface struct {
	size    fyne.Size
	objects []fyne.CanvasObject
}

// NewObjectSurface creates a surface covering size
func NewObjectSurface(size fyne.Size) *ObjectSurface {
	return &ObjectSurface{size: size}
}

// Objects returns the collected objects in paint order
func (s *ObjectSurface) Objects() []fyne.CanvasObject {
	return s.objects
}

// Clear drops everything painted so far and fills the background
func (s *ObjectSurface) Clear(c color.Color) {
	background := canvas.NewRectangle(c)
	background.Resize(s.size)
	s.objects = []fyne.CanvasObject{background}
}

func (s *ObjectSurface) DrawLine(from, to geometry.Point, pen visualizer.Pen) {
	for _, dash := range geometry.DashSegments(geometry.Segment{Start: from, End: to}, pen.Dash) {
		line := canvas.NewLine(pen.Color)
		line.StrokeWidth = float32(pen.Width)
		line.Position1 = position(dash.Start)
		line.Position2 = position(dash.End)
		s.objects = append(s.objects, line)
	}
}

// DrawEllipse outlines a circle. Dashes are ignored for circles.
func (s *ObjectSurface) DrawEllipse(center geometry.Point, radius float64, pen visualizer.Pen) {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = pen.Color
	circle.StrokeWidth = float32(pen.Width)
	placeCircle(circle, center, radius)
	s.objects = append(s.objects, circle)
}

func (s *ObjectSurface) FillEllipse(center geometry.Point, radius float64, brush visualizer.Brush) {
	circle := canvas.NewCircle(brush.Color)
	placeCircle(circle, center, radius)
	s.objects = append(s.objects, circle)
}

func (s *ObjectSurface) DrawText(text string, at geometry.Point, brush visualizer.Brush) {
	label := canvas.NewText(text, brush.Color)
	label.TextSize = LabelSize
	label.Move(position(at))
	s.objects = append(s.objects, label)
}

func placeCircle(circle *canvas.Circle, center geometry.Point, radius float64) {
	circle.Position1 = position(center.Sub(geometry.NewPoint(radius, radius)))
	circle.Position2 = position(center.Add(geometry.NewPoint(radius, radius)))
}

func position(p geometry.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func point(p fyne.Position) geometry.Point {
	return geometry.NewPoint(float64(p.X), float64(p.Y))
}

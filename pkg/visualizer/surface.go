package visualizer

import (
	"image/color"

	"github.com/philipparndt/trivis/pkg/geometry"
)

// Surface is an immediate-mode 2D drawing context. Implementations are
// supplied by the host (raster image, GUI canvas) and only consumed here.
type Surface interface {
	Clear(c color.Color)
	DrawLine(from, to geometry.Point, pen Pen)
	DrawEllipse(center geometry.Point, radius float64, pen Pen)
	FillEllipse(center geometry.Point, radius float64, brush Brush)
	DrawText(text string, at geometry.Point, brush Brush)
}

// CommandKind identifies a recorded drawing call
type CommandKind int

const (
	ClearCommand CommandKind = iota
	LineCommand
	EllipseCommand
	FillEllipseCommand
	TextCommand
)

func (k CommandKind) String() string {
	switch k {
	case ClearCommand:
		return "clear"
	case LineCommand:
		return "line"
	case EllipseCommand:
		return "ellipse"
	case FillEllipseCommand:
		return "fill-ellipse"
	case TextCommand:
		return "text"
	}
	return "unknown"
}

// Command is one recorded drawing call. Only the fields relevant to the
// kind are set.
type Command struct {
	Kind   CommandKind
	From   geometry.Point // line start, ellipse center, text anchor
	To     geometry.Point // line end
	Radius float64
	Pen    Pen
	Brush  Brush
	Color  color.Color // clear color
	Text   string
}

// Recorder is a Surface that keeps every call in order
type Recorder struct {
	Commands []Command
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(c color.Color) {
	r.Commands = append(r.Commands, Command{Kind: ClearCommand, Color: c})
}

func (r *Recorder) DrawLine(from, to geometry.Point, pen Pen) {
	r.Commands = append(r.Commands, Command{Kind: LineCommand, From: from, To: to, Pen: pen})
}

func (r *Recorder) DrawEllipse(center geometry.Point, radius float64, pen Pen) {
	r.Commands = append(r.Commands, Command{Kind: EllipseCommand, From: center, Radius: radius, Pen: pen})
}

func (r *Recorder) FillEllipse(center geometry.Point, radius float64, brush Brush) {
	r.Commands = append(r.Commands, Command{Kind: FillEllipseCommand, From: center, Radius: radius, Brush: brush})
}

func (r *Recorder) DrawText(text string, at geometry.Point, brush Brush) {
	r.Commands = append(r.Commands, Command{Kind: TextCommand, From: at, Text: text, Brush: brush})
}

// Count returns how many commands of the given kind were recorded
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

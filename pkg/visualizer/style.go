package visualizer

import "image/color"

// DashPattern is the dash/gap pattern of the dashed construction pens
var DashPattern = []float64{10, 5}

// Named colors used by the default catalog
var (
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Red         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Blue        = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Green       = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Orange      = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	Purple      = color.RGBA{0x80, 0x00, 0x80, 0xff}
	Brown       = color.RGBA{0xa5, 0x2a, 0x2a, 0xff}
	DarkBlue    = color.RGBA{0x00, 0x00, 0x8b, 0xff}
	DarkRed     = color.RGBA{0x8b, 0x00, 0x00, 0xff}
	DarkMagenta = color.RGBA{0x8b, 0x00, 0x8b, 0xff}
)

// Pen is a stroke style
type Pen struct {
	Color color.Color
	Width float64
	Dash  []float64 // alternating dash/gap lengths; nil draws solid
}

// NewPen creates a solid pen of width 1
func NewPen(c color.Color) Pen {
	return Pen{Color: c, Width: 1}
}

// Dashed returns a copy of the pen using the given dash pattern
func (p Pen) Dashed(pattern ...float64) Pen {
	p.Dash = append([]float64(nil), pattern...)
	return p
}

// WithWidth returns a copy of the pen with a different width
func (p Pen) WithWidth(width float64) Pen {
	p.Width = width
	return p
}

// Brush is a fill style
type Brush struct {
	Color color.Color
}

// NewBrush creates a solid brush
func NewBrush(c color.Color) Brush {
	return Brush{Color: c}
}

// Package render paints triangle frames into raster images
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/philipparndt/trivis/pkg/visualizer"
	"github.com/pkg/errors"
)

// Raster is a drawing surface backed by an RGBA image
type Raster struct {
	ctx *gg.Context
}

// NewRaster creates a raster of the given pixel size
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid raster size %dx%d", width, height)
	}
	return &Raster{ctx: gg.NewContext(width, height)}, nil
}

// Width returns the width in pixels
func (r *Raster) Width() int { return r.ctx.Width() }

// Height returns the height in pixels
func (r *Raster) Height() int { return r.ctx.Height() }

// Image returns the painted image
func (r *Raster) Image() image.Image { return r.ctx.Image() }

func (r *Raster) Clear(c color.Color) {
	r.ctx.SetColor(c)
	r.ctx.Clear()
}

func (r *Raster) DrawLine(from, to geometry.Point, pen visualizer.Pen) {
	r.stroke(pen)
	r.ctx.DrawLine(from.X, from.Y, to.X, to.Y)
	r.ctx.Stroke()
}

func (r *Raster) DrawEllipse(center geometry.Point, radius float64, pen visualizer.Pen) {
	r.stroke(pen)
	r.ctx.DrawCircle(center.X, center.Y, radius)
	r.ctx.Stroke()
}

func (r *Raster) FillEllipse(center geometry.Point, radius float64, brush visualizer.Brush) {
	r.ctx.SetColor(brush.Color)
	r.ctx.DrawCircle(center.X, center.Y, radius)
	r.ctx.Fill()
}

// DrawText draws text with its top left corner at the given point
func (r *Raster) DrawText(text string, at geometry.Point, brush visualizer.Brush) {
	r.ctx.SetColor(brush.Color)
	r.ctx.DrawStringAnchored(text, at.X, at.Y, 0, 1)
}

func (r *Raster) stroke(pen visualizer.Pen) {
	r.ctx.SetColor(pen.Color)
	r.ctx.SetLineWidth(pen.Width)
	r.ctx.SetDash(pen.Dash...)
}

// EncodePNG writes the image as PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	return errors.Wrap(r.ctx.EncodePNG(w), "encode png")
}

// SavePNG writes the image as PNG to a file
func (r *Raster) SavePNG(path string) error {
	return errors.Wrapf(r.ctx.SavePNG(path), "save %s", path)
}

// Snapshot paints one frame of t with the active entries of catalog
func Snapshot(t *geometry.Triangle, catalog visualizer.Catalog, width, height int) (*Raster, error) {
	r, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	visualizer.DefaultFrame().Paint(r, t, catalog, visualizer.NoSelection)
	return r, nil
}

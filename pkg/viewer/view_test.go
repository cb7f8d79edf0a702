package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/trivis/internal/session"
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func TestViewDragsVertex(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.NewDefault()
	v := NewTriangleView(s)
	v.Resize(fyne.NewSize(400, 400))

	v.MouseDown(mouse(200, 200, desktop.MouseButtonPrimary))
	assert.Equal(t, 2, s.Selected())

	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(250, 210)}})
	assert.Equal(t, geometry.NewPoint(250, 210), s.Triangle.C())

	v.DragEnd()
	assert.False(t, s.Dragging())
}

func TestViewPansWithSecondaryButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := session.NewDefault()
	v := NewTriangleView(s)

	v.MouseDown(mouse(10, 10, desktop.MouseButtonSecondary))
	v.MouseMoved(mouse(20, 15, desktop.MouseButtonSecondary))
	assert.Equal(t, geometry.NewPoint(110, 105), s.Triangle.A())

	v.MouseUp(mouse(20, 15, desktop.MouseButtonSecondary))
	assert.False(t, s.Panning())
}

func TestRendererPaintsFrame(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := NewTriangleView(session.NewDefault())
	r := v.CreateRenderer()
	r.Layout(fyne.NewSize(400, 400))

	// background, 3 sides, 3 markers, 3 labels
	assert.Len(t, r.Objects(), 10)
}

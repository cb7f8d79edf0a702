// Package viewer provides the interactive fyne widget showing a triangle
// and its constructions
package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/trivis/internal/session"
)

// TriangleView renders a session and forwards pointer input to it. The
// left button drags vertices, the right and middle buttons pan.
type TriangleView struct {
	widget.BaseWidget
	session *session.Session
}

var (
	_ desktop.Mouseable = (*TriangleView)(nil)
	_ desktop.Hoverable = (*TriangleView)(nil)
	_ fyne.Draggable    = (*TriangleView)(nil)
)

// NewTriangleView creates a view for s
func NewTriangleView(s *session.Session) *TriangleView {
	v := &TriangleView{session: s}
	v.ExtendBaseWidget(v)
	return v
}

// Session returns the session shown by the view
func (v *TriangleView) Session() *session.Session {
	return v.session
}

// CreateRenderer creates the renderer for the widget
func (v *TriangleView) CreateRenderer() fyne.WidgetRenderer {
	return &triangleRenderer{view: v}
}

// MouseDown selects a vertex or starts panning
func (v *TriangleView) MouseDown(ev *desktop.MouseEvent) {
	button, ok := sessionButton(ev.Button)
	if !ok {
		return
	}
	if v.session.PointerDown(button, point(ev.Position)) {
		v.Refresh()
	}
}

// MouseUp ends a drag or pan
func (v *TriangleView) MouseUp(ev *desktop.MouseEvent) {
	if button, ok := sessionButton(ev.Button); ok {
		v.session.PointerUp(button)
	}
}

func (v *TriangleView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved moves the dragged vertex or pans the triangle
func (v *TriangleView) MouseMoved(ev *desktop.MouseEvent) {
	v.move(ev.Position)
}

func (v *TriangleView) MouseOut() {}

// Dragged receives motion while a button is held
func (v *TriangleView) Dragged(ev *fyne.DragEvent) {
	v.move(ev.Position)
}

// DragEnd releases every button since fyne does not report which one
// ended the drag
func (v *TriangleView) DragEnd() {
	v.session.PointerUp(session.Primary)
	v.session.PointerUp(session.Secondary)
}

func (v *TriangleView) move(pos fyne.Position) {
	if v.session.PointerMove(point(pos)) {
		v.Refresh()
	}
}

func sessionButton(b desktop.MouseButton) (session.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return session.Primary, true
	case desktop.MouseButtonSecondary:
		return session.Secondary, true
	case desktop.MouseButtonTertiary:
		return session.Tertiary, true
	}
	return 0, false
}

// triangleRenderer implements fyne.WidgetRenderer
type triangleRenderer struct {
	view    *TriangleView
	objects []fyne.CanvasObject
}

func (r *triangleRenderer) Layout(size fyne.Size) {
	r.paint(size)
}

func (r *triangleRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *triangleRenderer) Refresh() {
	r.paint(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *triangleRenderer) paint(size fyne.Size) {
	surface := NewObjectSurface(size)
	r.view.session.Paint(surface)
	r.objects = surface.Objects()
}

func (r *triangleRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *triangleRenderer) Destroy() {}

package visualizer

import (
	"github.com/philipparndt/trivis/pkg/geometry"
)

// MarkerRadius is the radius of filled point markers
const MarkerRadius = 5

func undefined(construction string, t *geometry.Triangle, err error) {
	Logger().Debug("skipping construction",
		"construction", construction,
		"triangle", t.String(),
		"err", err)
}

// Incircle draws the circle tangent to all three sides
type Incircle struct{ Pen Pen }

func (v Incircle) Visualize(s Surface, t *geometry.Triangle) {
	c, err := t.Incircle()
	if err != nil {
		undefined("incircle", t, err)
		return
	}
	s.DrawEllipse(c.Center, c.Radius, v.Pen)
}

// Incenter marks the incircle's center
type Incenter struct{ Brush Brush }

func (v Incenter) Visualize(s Surface, t *geometry.Triangle) {
	p, err := t.Incenter()
	if err != nil {
		undefined("incenter", t, err)
		return
	}
	s.FillEllipse(p, MarkerRadius, v.Brush)
}

// Medians draws each vertex to the midpoint of the opposite side
type Medians struct{ Pen Pen }

func (v Medians) Visualize(s Surface, t *geometry.Triangle) {
	for _, m := range t.Medians() {
		s.DrawLine(m.Start, m.End, v.Pen)
	}
}

// Centroid marks the intersection of the medians
type Centroid struct{ Brush Brush }

func (v Centroid) Visualize(s Surface, t *geometry.Triangle) {
	s.FillEllipse(t.Centroid(), MarkerRadius, v.Brush)
}

// Circumcircle draws the circle through the three vertices
type Circumcircle struct{ Pen Pen }

func (v Circumcircle) Visualize(s Surface, t *geometry.Triangle) {
	c, err := t.Circumcircle()
	if err != nil {
		undefined("circumcircle", t, err)
		return
	}
	s.DrawEllipse(c.Center, c.Radius, v.Pen)
}

// Circumcenter marks the circumcircle's center
type Circumcenter struct{ Brush Brush }

func (v Circumcenter) Visualize(s Surface, t *geometry.Triangle) {
	p, err := t.Circumcenter()
	if err != nil {
		undefined("circumcenter", t, err)
		return
	}
	s.FillEllipse(p, MarkerRadius, v.Brush)
}

// Altitudes draws the three altitudes with Pen. Extension draws the
// sides prolonged to feet that fall outside them and the segments from
// each foot to the orthocenter.
type Altitudes struct {
	Pen       Pen
	Extension Pen
}

func (v Altitudes) Visualize(s Surface, t *geometry.Triangle) {
	feet, err := t.AltitudeFeet()
	if err != nil {
		undefined("altitudes", t, err)
		return
	}
	a, b, c := t.A(), t.B(), t.C()
	hA, hB, hC := feet[0], feet[1], feet[2]

	s.DrawLine(a, hA, v.Pen)
	s.DrawLine(b, hB, v.Pen)
	s.DrawLine(c, hC, v.Pen)

	s.DrawLine(b, hA, v.Extension)
	s.DrawLine(a, hC, v.Extension)
	s.DrawLine(c, hB, v.Extension)

	orthocenter, err := t.Orthocenter()
	if err != nil {
		undefined("orthocenter", t, err)
		return
	}
	for _, foot := range feet {
		s.DrawLine(foot, orthocenter, v.Extension)
	}
}

// Orthocenter marks the intersection of the altitudes
type Orthocenter struct{ Brush Brush }

func (v Orthocenter) Visualize(s Surface, t *geometry.Triangle) {
	p, err := t.Orthocenter()
	if err != nil {
		undefined("orthocenter", t, err)
		return
	}
	s.FillEllipse(p, MarkerRadius, v.Brush)
}

// EulerLine draws the line through the centroid and the circumcenter
type EulerLine struct{ Pen Pen }

func (v EulerLine) Visualize(s Surface, t *geometry.Triangle) {
	line, err := t.EulerLine()
	if err != nil {
		undefined("euler line", t, err)
		return
	}
	s.DrawLine(line.Start, line.End, v.Pen)
}

// AngleBisectors draws each vertex to the incenter
type AngleBisectors struct{ Pen Pen }

func (v AngleBisectors) Visualize(s Surface, t *geometry.Triangle) {
	incenter, err := t.Incenter()
	if err != nil {
		undefined("angle bisectors", t, err)
		return
	}
	for _, p := range t.Vertices() {
		s.DrawLine(p, incenter, v.Pen)
	}
}

// ExternalAngleBisectors draws the triangle of the three excenters,
// whose sides lie on the external angle bisectors
type ExternalAngleBisectors struct{ Pen Pen }

func (v ExternalAngleBisectors) Visualize(s Surface, t *geometry.Triangle) {
	e, err := t.Excenters()
	if err != nil {
		undefined("external angle bisectors", t, err)
		return
	}
	s.DrawLine(e[0], e[1], v.Pen)
	s.DrawLine(e[1], e[2], v.Pen)
	s.DrawLine(e[2], e[0], v.Pen)
}

// SideBisectors draws short marks on the perpendicular bisectors of
// the sides
type SideBisectors struct{ Pen Pen }

func (v SideBisectors) Visualize(s Surface, t *geometry.Triangle) {
	marks, err := t.SideBisectors()
	if err != nil {
		undefined("side bisectors", t, err)
		return
	}
	for _, m := range marks {
		s.DrawLine(m.Start, m.End, v.Pen)
	}
}

// Excircles draws the three excircles
type Excircles struct{ Pen Pen }

func (v Excircles) Visualize(s Surface, t *geometry.Triangle) {
	circles, err := t.Excircles()
	if err != nil {
		undefined("excircles", t, err)
		return
	}
	for _, c := range circles {
		s.DrawEllipse(c.Center, c.Radius, v.Pen)
	}
}

// ExcircleCenters marks the three excenters
type ExcircleCenters struct{ Brush Brush }

func (v ExcircleCenters) Visualize(s Surface, t *geometry.Triangle) {
	centers, err := t.Excenters()
	if err != nil {
		undefined("excircle centers", t, err)
		return
	}
	for _, p := range centers {
		s.FillEllipse(p, MarkerRadius, v.Brush)
	}
}

// ExcircleTangents draws the prolongations of the sides each excircle
// touches, from the vertex through the tangent point and as far again
type ExcircleTangents struct{ Pen Pen }

func (v ExcircleTangents) Visualize(s Surface, t *geometry.Triangle) {
	centers, err := t.Excenters()
	if err != nil {
		undefined("excircle tangents", t, err)
		return
	}
	a, b, c := t.A(), t.B(), t.C()
	tangents := []struct{ from, to, center geometry.Point }{
		{a, b, centers[0]}, {a, c, centers[0]},
		{b, a, centers[1]}, {b, c, centers[1]},
		{c, b, centers[2]}, {c, a, centers[2]},
	}
	for _, tg := range tangents {
		p, err := geometry.ExcircleTangentReflection(tg.from, tg.to, tg.center)
		if err != nil {
			undefined("excircle tangents", t, err)
			continue
		}
		s.DrawLine(p, tg.to, v.Pen)
	}
}

// NinePointCircle draws the circle through the side midpoints and the
// altitude feet
type NinePointCircle struct{ Pen Pen }

func (v NinePointCircle) Visualize(s Surface, t *geometry.Triangle) {
	c, err := t.NinePointCircle()
	if err != nil {
		undefined("nine-point circle", t, err)
		return
	}
	s.DrawEllipse(c.Center, c.Radius, v.Pen)
}

// NinePointCenter marks the nine-point circle's center
type NinePointCenter struct{ Brush Brush }

func (v NinePointCenter) Visualize(s Surface, t *geometry.Triangle) {
	p, err := t.NinePointCenter()
	if err != nil {
		undefined("nine-point center", t, err)
		return
	}
	s.FillEllipse(p, MarkerRadius, v.Brush)
}

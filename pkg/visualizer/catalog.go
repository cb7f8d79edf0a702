package visualizer

// DefaultCatalog builds the groups offered by the viewer and the CLI.
// Every entry starts inactive.
func DefaultCatalog() Catalog {
	dashed := func(p Pen) Pen { return p.Dashed(DashPattern...) }

	return Catalog{
		NewGroup("Incircle", "incircle").
			Add("Circle", "circle", Incircle{Pen: NewPen(Orange)}).
			Add("Center", "center", Incenter{Brush: NewBrush(Orange)}),

		NewGroup("Euler line", "euler-line").
			Add("Line", "line", EulerLine{Pen: NewPen(Purple)}),

		NewGroup("Centroid and medians", "centroid").
			Add("Medians", "medians", Medians{Pen: NewPen(Brown)}).
			Add("Centroid", "centroid", Centroid{Brush: NewBrush(Brown)}),

		NewGroup("Circumcircle", "circumcircle").
			Add("Circle", "circle", Circumcircle{Pen: NewPen(Green)}).
			Add("Center", "center", Circumcenter{Brush: NewBrush(Green)}),

		NewGroup("Altitudes and orthocenter", "altitudes").
			Add("Altitudes", "altitudes", Altitudes{Pen: NewPen(Black), Extension: dashed(NewPen(Black))}).
			Add("Orthocenter", "orthocenter", Orthocenter{Brush: NewBrush(Black)}),

		NewGroup("Bisectors", "bisectors").
			Add("Interior angles", "angles", AngleBisectors{Pen: dashed(NewPen(Orange))}).
			Add("Sides", "sides", SideBisectors{Pen: dashed(NewPen(Green))}).
			Add("Exterior angles", "exterior", ExternalAngleBisectors{Pen: dashed(NewPen(DarkBlue))}),

		NewGroup("Excircles", "excircles").
			Add("Circles", "circles", Excircles{Pen: NewPen(DarkBlue)}).
			Add("Centers", "centers", ExcircleCenters{Brush: NewBrush(DarkBlue)}).
			Add("Tangents", "tangents", ExcircleTangents{Pen: dashed(NewPen(DarkRed))}),

		NewGroup("Nine-point circle", "nine-point").
			Add("Circle", "circle", NinePointCircle{Pen: NewPen(DarkMagenta)}).
			Add("Center", "center", NinePointCenter{Brush: NewBrush(DarkMagenta)}),
	}
}

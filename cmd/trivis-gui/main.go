package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/trivis/internal/session"
	"github.com/philipparndt/trivis/pkg/analysis"
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/philipparndt/trivis/pkg/render"
	"github.com/philipparndt/trivis/pkg/viewer"
	"github.com/philipparndt/trivis/pkg/visualizer"
	"github.com/philipparndt/trivis/version"
)

type App struct {
	window      fyne.Window
	session     *session.Session
	view        *viewer.TriangleView
	accordion   *widget.Accordion
	measurement *MeasurementInfo
}

type MeasurementInfo struct {
	sidesLabel   *widget.Label
	anglesLabel  *widget.Label
	areaLabel    *widget.Label
	validLabel   *widget.Label
	centersLabel *widget.Label
}

func main() {
	if os.Getenv("TRIVIS_DEBUG") != "" {
		visualizer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a := app.New()
	w := a.NewWindow("Trivis " + version.GetFullVersion())

	appInstance := &App{
		window:  w,
		session: session.NewDefault(),
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1100, 700))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.measurement = &MeasurementInfo{
		sidesLabel:   widget.NewLabel(""),
		anglesLabel:  widget.NewLabel(""),
		areaLabel:    widget.NewLabel(""),
		validLabel:   widget.NewLabel(""),
		centersLabel: widget.NewLabel(""),
	}
	a.measurement.validLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.view = viewer.NewTriangleView(a.session)
	a.session.SetOnChange(a.updateMeasurements)

	a.accordion = widget.NewAccordion()
	for _, g := range a.session.Catalog {
		a.accordion.Append(a.groupItem(g))
	}

	resetButton := widget.NewButton("Reset Triangle", func() {
		a.session.Reset(
			geometry.NewPoint(100, 100),
			geometry.NewPoint(100, 300),
			geometry.NewPoint(200, 200),
		)
		a.view.Refresh()
	})

	saveButton := widget.NewButton("Save PNG", a.showSaveDialog)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag a vertex with the left mouse button\n" +
			"• Drag with the right or middle button to move the triangle",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Constructions:"),
		a.accordion,
		widget.NewSeparator(),
		widget.NewLabel("Measurements:"),
		a.measurement.validLabel,
		a.measurement.sidesLabel,
		a.measurement.anglesLabel,
		a.measurement.areaLabel,
		a.measurement.centersLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		resetButton,
		saveButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	split := container.NewHSplit(a.view, infoScroll)
	split.Offset = 0.7

	a.window.SetContent(split)
	a.updateMeasurements()
}

// groupItem builds the accordion item of one group. Groups with several
// entries get an "All" check, and the title shows how many are active.
func (a *App) groupItem(g *visualizer.Group) *widget.AccordionItem {
	item := widget.NewAccordionItem(groupTitle(g), nil)

	var allCheck *widget.Check
	checks := make([]*widget.Check, 0, len(g.Entries()))
	syncing := false

	update := func() {
		item.Title = groupTitle(g)
		if allCheck != nil {
			syncing = true
			allCheck.SetChecked(g.State() == visualizer.StateAll)
			syncing = false
		}
		a.accordion.Refresh()
		a.view.Refresh()
	}

	for _, e := range g.Entries() {
		entry := e
		check := widget.NewCheck(entry.Name, func(checked bool) {
			entry.Active = checked
			if !syncing {
				update()
			}
		})
		checks = append(checks, check)
	}

	content := container.NewVBox()
	if len(checks) > 1 {
		allCheck = widget.NewCheck("All", func(checked bool) {
			if syncing {
				return
			}
			syncing = true
			for _, c := range checks {
				c.SetChecked(checked)
			}
			syncing = false
			update()
		})
		content.Add(allCheck)
		content.Add(widget.NewSeparator())
	}
	for _, c := range checks {
		content.Add(c)
	}

	item.Detail = content
	return item
}

func groupTitle(g *visualizer.Group) string {
	switch g.State() {
	case visualizer.StateAll:
		return "☑ " + g.Name
	case visualizer.StatePartial:
		return fmt.Sprintf("◩ %s (%d/%d)", g.Name, g.ActiveCount(), len(g.Entries()))
	default:
		return "☐ " + g.Name
	}
}

func (a *App) updateMeasurements() {
	r := analysis.Analyze(a.session.Triangle)

	if r.Valid {
		a.measurement.validLabel.SetText(fmt.Sprintf("Triangle: %s, %s", r.ByAngle, r.BySides))
	} else {
		a.measurement.validLabel.SetText("Degenerate: constructions hidden")
	}

	sides := "Sides:"
	for _, s := range r.Sides {
		sides += fmt.Sprintf("\n  %s = %s", s.Name, analysis.FormatMeasurement(s.Length, ""))
	}
	a.measurement.sidesLabel.SetText(sides)

	a.measurement.anglesLabel.SetText(fmt.Sprintf("Angles:\n  α = %.2f°\n  β = %.2f°\n  γ = %.2f°",
		r.Angles[0], r.Angles[1], r.Angles[2]))

	a.measurement.areaLabel.SetText(fmt.Sprintf("Area: %s\nPerimeter: %s",
		analysis.FormatMeasurement(r.Area, ""),
		analysis.FormatMeasurement(r.Perimeter, "")))

	centers := "Centers:"
	for _, c := range r.Centers {
		centers += fmt.Sprintf("\n  %s: %s", c.Name, analysis.FormatCenter(c))
	}
	a.measurement.centersLabel.SetText(centers)
}

func (a *App) showSaveDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		size := a.view.Size()
		raster, err := render.Snapshot(a.session.Triangle, a.session.Catalog, int(size.Width), int(size.Height))
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := raster.EncodePNG(writer); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/philipparndt/trivis/pkg/analysis"
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/spf13/cobra"
)

var infoVertices = defaultVertices()

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the metrics and centers of a triangle",
	Long:  "Show side lengths, angles, area, perimeter and every notable center with its radius.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeInfo(cmd.OutOrStdout(), infoVertices.triangle(), aurora.NewAurora(!noColor))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoVertices.register(infoCmd)
}

func writeInfo(w io.Writer, t *geometry.Triangle, au aurora.Aurora) {
	r := analysis.Analyze(t)

	fmt.Fprintln(w, "Triangle Information")
	fmt.Fprintln(w, "====================")
	for i, name := range []string{"A", "B", "C"} {
		fmt.Fprintf(w, "%s: %s\n", name, analysis.FormatPoint(r.Vertices[i]))
	}
	fmt.Fprintln(w)

	if r.Valid {
		fmt.Fprintf(w, "Valid: %s (%s, %s)\n\n", au.Green("yes"), r.ByAngle, r.BySides)
	} else {
		fmt.Fprintf(w, "Valid: %s (area does not exceed %g)\n\n", au.Red("no"), geometry.DegenerateArea)
	}

	fmt.Fprintln(w, "Sides:")
	for _, s := range r.Sides {
		fmt.Fprintf(w, "  %s (%s%s): %s\n", s.Name, s.From, s.To, analysis.FormatMeasurement(s.Length, "units"))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Angles:")
	for i, name := range []string{"alpha", "beta", "gamma"} {
		fmt.Fprintf(w, "  %s: %s\n", name, formatAngle(r.Angles[i]))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Area: %s\n", analysis.FormatMeasurement(r.Area, "square units"))
	fmt.Fprintf(w, "Perimeter: %s\n\n", analysis.FormatMeasurement(r.Perimeter, "units"))

	fmt.Fprintln(w, "Centers:")
	for _, c := range append(r.Centers, r.Excircles...) {
		fmt.Fprintf(w, "  %s: %s\n", c.Name, formatCenter(c, au))
	}
}

func formatAngle(deg float64) string {
	if math.IsNaN(deg) {
		return "undefined"
	}
	return analysis.FormatMeasurement(deg, "°")
}

func formatCenter(c analysis.CenterInfo, au aurora.Aurora) string {
	if c.Err != nil {
		return au.Yellow(analysis.FormatCenter(c)).String()
	}
	return analysis.FormatCenter(c)
}

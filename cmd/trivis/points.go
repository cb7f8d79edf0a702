package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// pointValue is a flag holding a point written as "x,y"
type pointValue struct {
	p *geometry.Point
}

var _ pflag.Value = pointValue{}

func (v pointValue) String() string {
	if v.p == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", v.p.X, v.p.Y)
}

func (v pointValue) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (v pointValue) Type() string {
	return "x,y"
}

func parsePoint(s string) (geometry.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geometry.Point{}, errors.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "point %q: x", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "point %q: y", s)
	}
	p := geometry.NewPoint(x, y)
	if !p.IsFinite() {
		return geometry.Point{}, errors.Errorf("point %q: coordinates must be finite", s)
	}
	return p, nil
}

// vertexFlags are the --a, --b and --c flags shared by the commands
type vertexFlags struct {
	a, b, c geometry.Point
}

func defaultVertices() *vertexFlags {
	return &vertexFlags{
		a: geometry.NewPoint(100, 100),
		b: geometry.NewPoint(100, 300),
		c: geometry.NewPoint(200, 200),
	}
}

func (f *vertexFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(pointValue{&f.a}, "a", "Vertex A")
	cmd.Flags().Var(pointValue{&f.b}, "b", "Vertex B")
	cmd.Flags().Var(pointValue{&f.c}, "c", "Vertex C")
}

func (f *vertexFlags) triangle() *geometry.Triangle {
	return geometry.NewTriangle(f.a, f.b, f.c)
}

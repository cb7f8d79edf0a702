package main

import (
	"fmt"
	"io"
	"log/slog"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/philipparndt/trivis/pkg/geometry"
	"github.com/philipparndt/trivis/pkg/render"
	"github.com/philipparndt/trivis/pkg/visualizer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	output string
	width  int
	height int
	show   []string
	all    bool
	imgcat bool
}

var (
	renderVertices = defaultVertices()
	renderOpts     renderOptions
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a triangle and its constructions to PNG",
	Long: `Render a PNG snapshot of a triangle. Constructions are chosen with
--show using group or group.entry keys as listed by "trivis catalog".`,
	Example: `  trivis render --a 100,100 --b 100,300 --c 200,200 --show circumcircle,euler-line
  trivis render --all --imgcat`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderVertices.register(renderCmd)

	renderCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "triangle.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderOpts.width, "width", 800, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderOpts.height, "height", 600, "Image height in pixels")
	renderCmd.Flags().StringSliceVar(&renderOpts.show, "show", nil, "Constructions to draw (group or group.entry)")
	renderCmd.Flags().BoolVar(&renderOpts.all, "all", false, "Draw every construction")
	renderCmd.Flags().BoolVar(&renderOpts.imgcat, "imgcat", false, "Print the image to the terminal (iTerm2)")
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := renderTriangle(renderVertices.triangle(), renderOpts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%dx%d)\n", renderOpts.output, renderOpts.width, renderOpts.height)
	if renderOpts.imgcat {
		return showImage(cmd.OutOrStdout(), renderOpts.output)
	}
	return nil
}

// showImage writes the PNG at path to w using the iTerm2 inline image
// protocol
func showImage(w io.Writer, path string) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "imgcat %s", path)
	}
	return nil
}

func buildCatalog(show []string, all bool) (visualizer.Catalog, error) {
	catalog := visualizer.DefaultCatalog()
	if all {
		catalog.SetAll(true)
	}
	for _, path := range show {
		if err := catalog.SetActive(path, true); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func renderTriangle(t *geometry.Triangle, opts renderOptions) error {
	catalog, err := buildCatalog(opts.show, opts.all)
	if err != nil {
		return err
	}

	if !t.IsTriangle() {
		visualizer.Logger().Warn("degenerate triangle, drawing outline only", "triangle", t.String())
	}

	raster, err := render.Snapshot(t, catalog, opts.width, opts.height)
	if err != nil {
		return err
	}

	visualizer.Logger().Debug("saving snapshot", slog.String("path", opts.output))
	return raster.SavePNG(opts.output)
}

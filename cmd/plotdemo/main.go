// Command plotdemo demonstrates the plotpy plotting library.
// It writes a handful of figures (and the python scripts that generate
// them) into the output directory. Requires python3 with matplotlib.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/plotpy"
)

func main() {
	var (
		outDir  = flag.String("outdir", "/tmp/plotpy/demo", "output directory")
		format  = flag.String("format", "svg", "figure format (svg, png, pdf)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		plotpy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	demos := []struct {
		name string
		run  func(path string) error
	}{
		{"curve", curveDemo},
		{"contour", contourDemo},
		{"superquadric", superquadricDemo},
		{"polycurve", polycurveDemo},
	}
	for _, d := range demos {
		path := filepath.Join(*outDir, d.name+"."+*format)
		if err := d.run(path); err != nil {
			log.Fatalf("%s demo failed: %v", d.name, err)
		}
		log.Printf("wrote %s", path)
	}
}

func curveDemo(path string) error {
	x := plotpy.Linspace(0, 2*math.Pi, 60)
	sin := make([]float64, len(x))
	cos := make([]float64, len(x))
	for i, v := range x {
		sin[i] = math.Sin(v)
		cos[i] = math.Cos(v)
	}

	c1 := plotpy.NewCurve()
	c1.Label = "sin(x)"
	c1.LineWidth = 2
	if err := c1.Draw(x, sin); err != nil {
		return err
	}
	c2 := plotpy.NewCurve()
	c2.Label = "cos(x)"
	c2.LineStyle = "--"
	if err := c2.Draw(x, cos); err != nil {
		return err
	}

	plot := plotpy.NewPlot()
	plot.Add(c1)
	plot.Add(c2)
	leg := plotpy.NewLegend()
	leg.Draw()
	plot.Add(leg)
	plot.GridAndLabels("x", "y")
	return plot.Save(path)
}

func contourDemo(path string) error {
	grid, err := plotpy.MeshGrid(-2, 2, -2, 2, 41, 41, func(x, y float64) float64 {
		return x*x - y*y
	})
	if err != nil {
		return err
	}

	contour := plotpy.NewContour()
	contour.ColormapName = "seismic"
	contour.ColorbarLabel = "z"
	if err := contour.DrawGrid(grid); err != nil {
		return err
	}

	plot := plotpy.NewPlot()
	plot.Add(contour)
	plot.SetEqualAxes(true)
	plot.SetTitle("horse saddle")
	return plot.Save(path)
}

func superquadricDemo(path string) error {
	surface := plotpy.NewSurface()
	surface.ColormapName = "terrain"
	if _, err := surface.DrawSuperquadric(plotpy.SuperquadricParams{
		Radii:     [3]float64{1, 1, 1},
		Exponents: [3]float64{4, 4, 4},
		AlphaMin:  -180,
		AlphaMax:  180,
		ThetaMin:  -90,
		ThetaMax:  90,
		NAlpha:    41,
		NTheta:    21,
	}); err != nil {
		return err
	}

	plot := plotpy.NewPlot()
	plot.Add(surface)
	plot.SetEqualAxes(true)
	plot.SetCamera(20, 35)
	return plot.Save(path)
}

func polycurveDemo(path string) error {
	b := plotpy.BuildPath()
	b.Add(3, 0, plotpy.CodeMoveTo)
	b.Add(1, 1.5, plotpy.CodeCurve4)
	b.Add(0, 4, plotpy.CodeCurve4)
	b.Add(2.5, 3.9, plotpy.CodeCurve4)
	b.Add(3, 3.8, plotpy.CodeLineTo)
	b.Add(3.5, 3.9, plotpy.CodeLineTo)
	b.Add(6, 4, plotpy.CodeCurve4)
	b.Add(5, 1.5, plotpy.CodeCurve4)
	b.Add(3, 0, plotpy.CodeCurve4)
	curvePath, err := b.Finish(true)
	if err != nil {
		return err
	}

	canvas := plotpy.NewCanvas()
	canvas.FaceColor = "#f88989"
	canvas.EdgeColor = "red"
	if err := canvas.DrawPath(curvePath, true); err != nil {
		return err
	}

	plot := plotpy.NewPlot()
	plot.Add(canvas)
	plot.SetRange(1, 5, 0, 4)
	plot.SetHideAxes(true)
	plot.SetEqualAxes(true)
	return plot.Save(path)
}

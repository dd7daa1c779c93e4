// Package plotpy generates plots by writing Python/Matplotlib scripts
// and running them with an external python3 process.
//
// # Overview
//
// plotpy does not rasterize anything itself. Each drawable object
// (Curve, Contour, Surface, Canvas, ...) accumulates Matplotlib
// commands in an internal buffer; a Plot gathers those buffers,
// prepends a fixed Python header, writes the script next to the
// requested figure file, and invokes python3 to produce the image.
//
// # Quick Start
//
//	import "github.com/cpmech/plotpy"
//
//	x := []float64{1, 2, 3, 4, 5}
//	y := []float64{1, 4, 9, 16, 25}
//
//	curve := plotpy.NewCurve()
//	curve.Draw(x, y)
//
//	plot := plotpy.NewPlot()
//	plot.Add(curve)
//	plot.GridAndLabels("x", "y")
//	plot.Save("/tmp/plotpy/example.svg")
//
// # Geometry
//
// The geometry helpers are pure functions with no knowledge of the
// renderer: Superquadric, SphereGrid, CylinderGrid, HemisphereGrid and
// PlaneGrid produce point grids for 3D surfaces; MeshGrid samples a
// scalar function over a rectangular domain; PathBuilder assembles
// vector paths from pen commands. Their outputs (Grid, Path) can be
// handed to Surface and Canvas for rendering, or consumed directly.
//
// # Errors
//
// All validation happens synchronously at call time. Failures wrap one
// of two sentinels: ErrInvalidParameter for numeric preconditions and
// ErrMalformedPath for bad pen-command sequences. Running a script can
// additionally fail with the python process error, which carries the
// interpreter's combined output.
//
// # Requirements
//
// Saving or showing a plot requires python3 with numpy and matplotlib
// on PATH. Everything else works without Python installed.
package plotpy

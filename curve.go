// curve.go

package plotpy

import (
	"fmt"
	"strings"
)

// Curve generates a line plot (Matplotlib's plot function) given x-y
// or x-y-z arrays. Styling fields left at their zero value are omitted
// from the generated command, falling back to Matplotlib defaults.
type Curve struct {
	Label           string  // name of this curve in the legend
	LineAlpha       float64 // opacity of the line (0, 1]
	LineColor       string  // color of the line
	LineStyle       string  // style of the line, e.g. "-", ":", "--", "-."
	LineWidth       float64 // width of the line
	MarkerColor     string  // color of the marker face
	MarkerEvery     int     // mark only every n-th point
	MarkerVoid      bool    // draw the marker edge only
	MarkerLineColor string  // color of the marker edge
	MarkerLineWidth float64 // width of the marker edge
	MarkerSize      float64 // size of the marker
	MarkerStyle     string  // marker style, e.g. "o", "+"

	buffer strings.Builder
}

// NewCurve creates a new Curve object.
func NewCurve() *Curve {
	return &Curve{}
}

// Buffer returns the accumulated python commands.
func (c *Curve) Buffer() string {
	return c.buffer.String()
}

// Draw generates the curve from the abscissa array x and ordinate
// array y, which must be non-empty and of equal length.
func (c *Curve) Draw(x, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return invalidParamf("curve needs non-empty x and y of equal length (got %d, %d)", len(x), len(y))
	}
	writeVector(&c.buffer, "x", x)
	writeVector(&c.buffer, "y", y)
	fmt.Fprintf(&c.buffer, "plt.plot(x,y%s)\n", c.options())
	return nil
}

// Draw3 generates a 3D curve from the x, y and z arrays, which must be
// non-empty and of equal length.
func (c *Curve) Draw3(x, y, z []float64) error {
	if len(x) == 0 || len(x) != len(y) || len(x) != len(z) {
		return invalidParamf("curve needs non-empty x, y and z of equal length (got %d, %d, %d)",
			len(x), len(y), len(z))
	}
	writeVector(&c.buffer, "x", x)
	writeVector(&c.buffer, "y", y)
	writeVector(&c.buffer, "z", z)
	fmt.Fprintf(&c.buffer, "ax3d().plot(x,y,z%s)\n", c.options())
	return nil
}

func (c *Curve) options() string {
	// a void marker with no explicit line color would be invisible
	lineColor := c.LineColor
	if c.MarkerVoid && lineColor == "" {
		lineColor = "red"
	}

	var opt strings.Builder
	if c.LineAlpha > 0 {
		fmt.Fprintf(&opt, ",alpha=%s", ftoa(c.LineAlpha))
	}
	if lineColor != "" {
		fmt.Fprintf(&opt, ",color='%s'", lineColor)
	}
	if c.LineStyle != "" {
		fmt.Fprintf(&opt, ",linestyle='%s'", c.LineStyle)
	}
	if c.LineWidth > 0 {
		fmt.Fprintf(&opt, ",linewidth=%s", ftoa(c.LineWidth))
	}
	if c.MarkerColor != "" {
		fmt.Fprintf(&opt, ",markerfacecolor='%s'", c.MarkerColor)
	}
	if c.MarkerEvery > 0 {
		fmt.Fprintf(&opt, ",markevery=%d", c.MarkerEvery)
	}
	if c.MarkerVoid {
		opt.WriteString(",markerfacecolor='none'")
	}
	if c.MarkerLineColor != "" {
		fmt.Fprintf(&opt, ",markeredgecolor='%s'", c.MarkerLineColor)
	}
	if c.MarkerLineWidth > 0 {
		fmt.Fprintf(&opt, ",markeredgewidth=%s", ftoa(c.MarkerLineWidth))
	}
	if c.MarkerSize > 0 {
		fmt.Fprintf(&opt, ",markersize=%s", ftoa(c.MarkerSize))
	}
	if c.MarkerStyle != "" {
		fmt.Fprintf(&opt, ",marker=%s", quoteMarker(c.MarkerStyle))
	}
	if c.Label != "" {
		fmt.Fprintf(&opt, ",label=r'%s'", pyEscape(c.Label))
	}
	return opt.String()
}

// contour.go

package plotpy

import (
	"fmt"
	"strings"
)

// Contour generates a filled contour plot with optional line contours,
// labels and colorbar. The x, y and z matrices typically come from
// MeshGrid.
type Contour struct {
	Colors            []string  // colors to use instead of a colormap
	Levels            []float64 // levels to be drawn
	ColormapIndex     int       // colormap index (see get_colormap table)
	ColormapName      string    // colormap name; overrides ColormapIndex
	NumberFormat      string    // number format for the labels, e.g. "%.2f"
	NoLines           bool      // do not draw line contours on top of the filled contour
	NoLabels          bool      // do not add labels to the line contours
	NoInline          bool      // do not draw labels 'inline' with the lines
	NoColorbar        bool      // do not add a colorbar
	ColorbarLabel     string    // colorbar label
	SelectedValue     float64   // level to highlight (with SelectedColor)
	SelectedColor     string    // color of the highlighted level
	SelectedLineWidth float64   // line width of the highlighted level

	buffer strings.Builder
}

// NewContour creates a new Contour object.
func NewContour() *Contour {
	return &Contour{}
}

// Buffer returns the accumulated python commands.
func (c *Contour) Buffer() string {
	return c.buffer.String()
}

// DrawGrid generates the contour plot from a sampled grid.
func (c *Contour) DrawGrid(g *Grid) error {
	return c.Draw(g.X, g.Y, g.Z)
}

// Draw generates the contour plot from x, y and z matrices of
// identical shape.
func (c *Contour) Draw(x, y, z [][]float64) error {
	if err := checkMatrices(x, y, z); err != nil {
		return err
	}
	writeMatrix(&c.buffer, "x", x)
	writeMatrix(&c.buffer, "y", y)
	writeMatrix(&c.buffer, "z", z)

	fmt.Fprintf(&c.buffer, "cf=plt.contourf(x,y,z%s)\n", c.optionsFilled())
	if !c.NoLines {
		fmt.Fprintf(&c.buffer, "cl=plt.contour(x,y,z,colors=['black']%s)\n", c.optionsShared())
		if !c.NoLabels {
			inline := "True"
			if c.NoInline {
				inline = "False"
			}
			format := c.NumberFormat
			if format == "" {
				format = "%g"
			}
			fmt.Fprintf(&c.buffer, "plt.clabel(cl,inline=%s,fmt='%s')\n", inline, format)
		}
	}
	if !c.NoColorbar {
		c.buffer.WriteString("cb=plt.colorbar(cf)\n")
		if c.ColorbarLabel != "" {
			fmt.Fprintf(&c.buffer, "cb.ax.set_ylabel(r'%s')\n", pyEscape(c.ColorbarLabel))
		}
	}
	if c.SelectedColor != "" {
		width := c.SelectedLineWidth
		if width <= 0 {
			width = 2.0
		}
		fmt.Fprintf(&c.buffer, "plt.contour(x,y,z,levels=[%s],colors=['%s'],linewidths=[%s])\n",
			ftoa(c.SelectedValue), c.SelectedColor, ftoa(width))
	}
	return nil
}

// optionsFilled returns options for the filled contour.
func (c *Contour) optionsFilled() string {
	var opt strings.Builder
	if len(c.Colors) > 0 {
		fmt.Fprintf(&opt, ",colors=%s", stringList(c.Colors))
	} else if c.ColormapName != "" {
		fmt.Fprintf(&opt, ",cmap=plt.get_cmap('%s')", c.ColormapName)
	} else {
		fmt.Fprintf(&opt, ",cmap=get_colormap(%d)", c.ColormapIndex)
	}
	opt.WriteString(c.optionsShared())
	return opt.String()
}

// optionsShared returns options common to filled and line contours.
func (c *Contour) optionsShared() string {
	if len(c.Levels) > 0 {
		return fmt.Sprintf(",levels=%s", floatList(c.Levels))
	}
	return ""
}

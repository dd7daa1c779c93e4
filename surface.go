// surface.go

package plotpy

import (
	"fmt"
	"strings"
)

// Surface generates a 3D surface, or wireframe, or both, from a point
// grid. The geometry helpers (DrawSphere, DrawSuperquadric, ...) build
// the grid with the pure functions from superquadric.go and then
// render it, returning the grid so callers can inspect or reuse the
// coordinates.
type Surface struct {
	RowStride            int     // row stride (rstride)
	ColStride            int     // column stride (cstride)
	NoSurface            bool    // do not draw the surface (e.g. wireframe only)
	Wireframe            bool    // draw a wireframe
	ColormapIndex        int     // colormap index (see get_colormap table)
	ColormapName         string  // colormap name; overrides ColormapIndex
	Colorbar             bool    // draw a colorbar
	ColorbarLabel        string  // colorbar label
	ColorbarNumberFormat string  // number format for the colorbar labels
	LineColor            string  // color of the wireframe lines
	LineStyle            string  // style of the wireframe lines
	LineWidth            float64 // width of the wireframe lines

	buffer strings.Builder
}

// NewSurface creates a new Surface object.
func NewSurface() *Surface {
	return &Surface{}
}

// Buffer returns the accumulated python commands.
func (s *Surface) Buffer() string {
	return s.buffer.String()
}

// DrawGrid renders a point grid as a surface and/or wireframe.
func (s *Surface) DrawGrid(g *Grid) error {
	return s.Draw(g.X, g.Y, g.Z)
}

// Draw renders x, y and z matrices of identical shape as a surface
// and/or wireframe.
func (s *Surface) Draw(x, y, z [][]float64) error {
	if err := checkMatrices(x, y, z); err != nil {
		return err
	}
	writeMatrix(&s.buffer, "x", x)
	writeMatrix(&s.buffer, "y", y)
	writeMatrix(&s.buffer, "z", z)
	if !s.NoSurface {
		fmt.Fprintf(&s.buffer, "sf=ax3d().plot_surface(x,y,z%s)\n", s.optionsSurface())
	}
	if s.Wireframe {
		fmt.Fprintf(&s.buffer, "ax3d().plot_wireframe(x,y,z%s)\n", s.optionsWireframe())
	}
	if s.Colorbar && !s.NoSurface {
		fmt.Fprintf(&s.buffer, "cb=plt.colorbar(sf%s)\n", s.optionsColorbar())
		if s.ColorbarLabel != "" {
			fmt.Fprintf(&s.buffer, "cb.ax.set_ylabel(r'%s')\n", pyEscape(s.ColorbarLabel))
		}
	}
	return nil
}

// DrawSphere computes a sphere grid and renders it.
func (s *Surface) DrawSphere(center Point3, radius float64, nAlpha, nTheta int) (*Grid, error) {
	g, err := SphereGrid(center, radius, nAlpha, nTheta)
	if err != nil {
		return nil, err
	}
	return g, s.DrawGrid(g)
}

// DrawSuperquadric computes a superquadric grid and renders it.
func (s *Surface) DrawSuperquadric(p SuperquadricParams) (*Grid, error) {
	g, err := Superquadric(p)
	if err != nil {
		return nil, err
	}
	return g, s.DrawGrid(g)
}

// DrawCylinder computes a cylinder grid along the a-to-b axis and
// renders it.
func (s *Surface) DrawCylinder(a, b Point3, radius float64, nAxis, nPerimeter int) (*Grid, error) {
	g, err := CylinderGrid(a, b, radius, nAxis, nPerimeter)
	if err != nil {
		return nil, err
	}
	return g, s.DrawGrid(g)
}

// DrawHemisphere computes a hemisphere grid and renders it.
func (s *Surface) DrawHemisphere(center Point3, radius, alphaMin, alphaMax float64, nAlpha, nTheta int, cup bool) (*Grid, error) {
	g, err := HemisphereGrid(center, radius, alphaMin, alphaMax, nAlpha, nTheta, cup)
	if err != nil {
		return nil, err
	}
	return g, s.DrawGrid(g)
}

// DrawPlane computes a grid on the plane through point with the given
// normal (nonzero z-component) and renders it.
func (s *Surface) DrawPlane(point, normal Point3, xmin, xmax, ymin, ymax float64, nx, ny int) (*Grid, error) {
	g, err := PlaneGrid(point, normal, xmin, xmax, ymin, ymax, nx, ny)
	if err != nil {
		return nil, err
	}
	return g, s.DrawGrid(g)
}

func (s *Surface) optionsSurface() string {
	var opt strings.Builder
	if s.RowStride > 0 {
		fmt.Fprintf(&opt, ",rstride=%d", s.RowStride)
	}
	if s.ColStride > 0 {
		fmt.Fprintf(&opt, ",cstride=%d", s.ColStride)
	}
	if s.ColormapName != "" {
		fmt.Fprintf(&opt, ",cmap=plt.get_cmap('%s')", s.ColormapName)
	} else {
		fmt.Fprintf(&opt, ",cmap=get_colormap(%d)", s.ColormapIndex)
	}
	return opt.String()
}

func (s *Surface) optionsWireframe() string {
	var opt strings.Builder
	if s.RowStride > 0 {
		fmt.Fprintf(&opt, ",rstride=%d", s.RowStride)
	}
	if s.ColStride > 0 {
		fmt.Fprintf(&opt, ",cstride=%d", s.ColStride)
	}
	if s.LineColor != "" {
		fmt.Fprintf(&opt, ",color='%s'", s.LineColor)
	}
	if s.LineStyle != "" {
		fmt.Fprintf(&opt, ",linestyle='%s'", s.LineStyle)
	}
	if s.LineWidth > 0 {
		fmt.Fprintf(&opt, ",linewidth=%s", ftoa(s.LineWidth))
	}
	return opt.String()
}

func (s *Surface) optionsColorbar() string {
	if s.ColorbarNumberFormat != "" {
		return fmt.Sprintf(",format='%s'", s.ColorbarNumberFormat)
	}
	return ""
}

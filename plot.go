// plot.go

package plotpy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GraphMaker is implemented by drawable objects that accumulate
// Matplotlib commands, ready to be added to a Plot.
type GraphMaker interface {
	// Buffer returns the accumulated python commands.
	Buffer() string
}

// Plot assembles python commands from drawable objects and axis-level
// settings, then hands the script to python3 for rendering.
//
// Methods write commands in call order, mirroring Matplotlib's
// imperative pyplot API: settings that must follow a drawing (such as
// the camera for a 3D surface) must be applied after Add.
type Plot struct {
	buffer strings.Builder
}

// NewPlot creates a new empty Plot.
func NewPlot() *Plot {
	return &Plot{}
}

// Buffer returns the accumulated python commands.
func (p *Plot) Buffer() string {
	return p.buffer.String()
}

// Add appends the commands of a drawable object to the plot.
func (p *Plot) Add(g GraphMaker) {
	p.buffer.WriteString(g.Buffer())
}

// Extra appends raw python/matplotlib commands to the plot.
func (p *Plot) Extra(commands string) {
	p.buffer.WriteString(commands)
	if !strings.HasSuffix(commands, "\n") {
		p.buffer.WriteByte('\n')
	}
}

// SetTitle sets the title of the current axes.
func (p *Plot) SetTitle(title string) {
	fmt.Fprintf(&p.buffer, "plt.title(r'%s')\n", pyEscape(title))
}

// SetSuperTitle sets the title of the whole figure.
func (p *Plot) SetSuperTitle(title string) {
	fmt.Fprintf(&p.buffer, "st=plt.suptitle(r'%s')\nadd_to_ea(st)\n", pyEscape(title))
}

// SetSubplot starts a subplot in a (row by col) figure grid; index
// counts from 1.
func (p *Plot) SetSubplot(row, col, index int) {
	fmt.Fprintf(&p.buffer, "plt.subplot(%d,%d,%d)\n", row, col, index)
}

// SetSubplot3D starts a 3D subplot in a (row by col) figure grid;
// index counts from 1.
func (p *Plot) SetSubplot3D(row, col, index int) {
	fmt.Fprintf(&p.buffer, "subplot3d(%d,%d,%d)\n", row, col, index)
}

// SetRange sets the 2D axes limits.
func (p *Plot) SetRange(xmin, xmax, ymin, ymax float64) {
	fmt.Fprintf(&p.buffer, "plt.axis([%s,%s,%s,%s])\n",
		ftoa(xmin), ftoa(xmax), ftoa(ymin), ftoa(ymax))
}

// SetRange3D sets the 3D axes limits.
func (p *Plot) SetRange3D(xmin, xmax, ymin, ymax, zmin, zmax float64) {
	fmt.Fprintf(&p.buffer, "ax3d().set_xlim3d(%s,%s)\nax3d().set_ylim3d(%s,%s)\nax3d().set_zlim3d(%s,%s)\n",
		ftoa(xmin), ftoa(xmax), ftoa(ymin), ftoa(ymax), ftoa(zmin), ftoa(zmax))
}

// SetXRange sets the x axis limits.
func (p *Plot) SetXRange(xmin, xmax float64) {
	fmt.Fprintf(&p.buffer, "plt.xlim(%s,%s)\n", ftoa(xmin), ftoa(xmax))
}

// SetYRange sets the y axis limits.
func (p *Plot) SetYRange(ymin, ymax float64) {
	fmt.Fprintf(&p.buffer, "plt.ylim(%s,%s)\n", ftoa(ymin), ftoa(ymax))
}

// SetLabelX sets the label along the x axis (2D or 3D).
func (p *Plot) SetLabelX(label string) {
	fmt.Fprintf(&p.buffer, "set_axis_label(1,r'%s')\n", pyEscape(label))
}

// SetLabelY sets the label along the y axis (2D or 3D).
func (p *Plot) SetLabelY(label string) {
	fmt.Fprintf(&p.buffer, "set_axis_label(2,r'%s')\n", pyEscape(label))
}

// SetLabelZ sets the label along the z axis (3D only).
func (p *Plot) SetLabelZ(label string) {
	fmt.Fprintf(&p.buffer, "set_axis_label(3,r'%s')\n", pyEscape(label))
}

// Grid adds a light grid to the current axes.
func (p *Plot) Grid() {
	p.buffer.WriteString("plt.grid(linestyle='--',color='grey',zorder=-1000)\n")
}

// GridAndLabels adds a grid and sets the x and y labels.
func (p *Plot) GridAndLabels(x, y string) {
	p.Grid()
	p.SetLabelX(x)
	p.SetLabelY(y)
}

// SetEqualAxes uses the same data-to-plot scaling for all axes, so a
// circle shows as a circle and not an ellipse. For 3D plots this needs
// Matplotlib 3.3 or later.
func (p *Plot) SetEqualAxes(equal bool) {
	if equal {
		p.buffer.WriteString("set_equal_axes()\n")
	} else {
		p.buffer.WriteString("plt.gca().axes.set_aspect('auto')\n")
	}
}

// SetHideAxes hides (or shows) the axes.
func (p *Plot) SetHideAxes(hide bool) {
	if hide {
		p.buffer.WriteString("plt.axis('off')\n")
	} else {
		p.buffer.WriteString("plt.axis('on')\n")
	}
}

// SetFrameBorders shows or hides the frame borders (spines) around the
// current axes.
func (p *Plot) SetFrameBorders(show bool) {
	v := "False"
	if show {
		v = "True"
	}
	fmt.Fprintf(&p.buffer, "for spine in plt.gca().spines.values(): spine.set_visible(%s)\n", v)
}

// SetLogX applies a log scale along the x axis.
func (p *Plot) SetLogX(log bool) {
	if log {
		p.buffer.WriteString("plt.gca().set_xscale('log')\n")
	} else {
		p.buffer.WriteString("plt.gca().set_xscale('linear')\n")
	}
}

// SetLogY applies a log scale along the y axis.
func (p *Plot) SetLogY(log bool) {
	if log {
		p.buffer.WriteString("plt.gca().set_yscale('log')\n")
	} else {
		p.buffer.WriteString("plt.gca().set_yscale('linear')\n")
	}
}

// SetFigureSize sets the figure size in inches.
func (p *Plot) SetFigureSize(width, height float64) {
	fmt.Fprintf(&p.buffer, "plt.gcf().set_size_inches(%s,%s)\n", ftoa(width), ftoa(height))
}

// SetCamera sets the camera elevation and azimuth (3D only, degrees).
// Must be called after the 3D object has been added.
func (p *Plot) SetCamera(elevation, azimuth float64) {
	fmt.Fprintf(&p.buffer, "ax3d().view_init(elev=%s,azim=%s)\n", ftoa(elevation), ftoa(azimuth))
}

// Save writes the python script next to figPath and runs python3 to
// render the figure. The image format follows the file extension
// (e.g. .svg, .png, .pdf). The output directory is created if needed.
func (p *Plot) Save(figPath string) error {
	return p.SaveContext(context.Background(), figPath)
}

// SaveContext is like Save but carries a context for cancellation of
// the external python process.
func (p *Plot) SaveContext(ctx context.Context, figPath string) error {
	dir := filepath.Dir(figPath)
	base := filepath.Base(figPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	commands := p.buffer.String() +
		fmt.Sprintf("plt.savefig(r'%s',bbox_inches='tight',bbox_extra_artists=EXTRA_ARTISTS)\n", pyEscape(figPath))
	if _, err := callPython3(ctx, commands, dir, name+".py"); err != nil {
		return err
	}
	Logger().Info("figure written", "path", figPath)
	return nil
}

// Show opens the plot in Matplotlib's interactive window, blocking
// until the window is closed. The script is written to a temporary
// directory.
func (p *Plot) Show() error {
	return p.ShowContext(context.Background())
}

// ShowContext is like Show but carries a context for cancellation.
func (p *Plot) ShowContext(ctx context.Context) error {
	dir, err := os.MkdirTemp("", "plotpy")
	if err != nil {
		return fmt.Errorf("plotpy: cannot create temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)
	commands := p.buffer.String() + "plt.show()\n"
	_, err = callPython3(ctx, commands, dir, "show.py")
	return err
}

// canvas.go

package plotpy

import (
	"fmt"
	"strings"
)

// Canvas draws 2D and 3D features: circles, arcs, arrows, rectangles,
// polylines, and polycurves (paths mixing straight segments with
// quadratic and cubic Beziers).
type Canvas struct {
	EdgeColor  string  // color of shape edges
	FaceColor  string  // color of shape faces
	LineWidth  float64 // width of edge lines
	LineStyle  string  // style of edge lines
	StopClip   bool    // do not clip shapes at the axes boundary
	ArrowScale float64 // scale of arrow heads (mutation_scale)
	ArrowStyle string  // style of arrows, e.g. "fancy", "->"

	buffer strings.Builder
}

// NewCanvas creates a new Canvas object.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Buffer returns the accumulated python commands.
func (c *Canvas) Buffer() string {
	return c.buffer.String()
}

// DrawCircle draws a circle with center (xc, yc) and radius r (2D only).
func (c *Canvas) DrawCircle(xc, yc, r float64) {
	fmt.Fprintf(&c.buffer, "p=pat.Circle((%s,%s),%s%s)\nplt.gca().add_patch(p)\n",
		ftoa(xc), ftoa(yc), ftoa(r), c.optionsShared())
}

// DrawArc draws a circular arc from iniAngle to finAngle, in degrees
// (2D only).
func (c *Canvas) DrawArc(xc, yc, r, iniAngle, finAngle float64) {
	fmt.Fprintf(&c.buffer, "p=pat.Arc((%s,%s),2*%s,2*%s,theta1=%s,theta2=%s,angle=0%s)\nplt.gca().add_patch(p)\n",
		ftoa(xc), ftoa(yc), ftoa(r), ftoa(r), ftoa(iniAngle), ftoa(finAngle), c.optionsShared())
}

// DrawArrow draws an arrow from (xi, yi) to (xf, yf) (2D only).
func (c *Canvas) DrawArrow(xi, yi, xf, yf float64) {
	fmt.Fprintf(&c.buffer, "p=pat.FancyArrowPatch((%s,%s),(%s,%s)"+
		",shrinkA=0,shrinkB=0"+
		",path_effects=[pff.Stroke(joinstyle='miter')]"+
		"%s%s)\nplt.gca().add_patch(p)\n",
		ftoa(xi), ftoa(yi), ftoa(xf), ftoa(yf), c.optionsShared(), c.optionsArrow())
}

// DrawRectangle draws a rectangle with lower-left corner (x, y) (2D only).
func (c *Canvas) DrawRectangle(x, y, width, height float64) {
	fmt.Fprintf(&c.buffer, "p=pat.Rectangle((%s,%s),%s,%s%s)\nplt.gca().add_patch(p)\n",
		ftoa(x), ftoa(y), ftoa(width), ftoa(height), c.optionsShared())
}

// DrawPolyline draws straight segments through the given points,
// optionally closing the polygon. Fewer than 2 points is an error.
func (c *Canvas) DrawPolyline(points []Point, closed bool) error {
	if len(points) < 2 {
		return invalidParamf("polyline needs at least 2 points (got %d)", len(points))
	}
	fmt.Fprintf(&c.buffer, "dat=[[pth.Path.MOVETO,(%s,%s)]", ftoa(points[0].X), ftoa(points[0].Y))
	for _, p := range points[1:] {
		fmt.Fprintf(&c.buffer, ",[pth.Path.LINETO,(%s,%s)]", ftoa(p.X), ftoa(p.Y))
	}
	if closed {
		c.buffer.WriteString(",[pth.Path.CLOSEPOLY,(None,None)]")
	}
	c.patchBlock()
	return nil
}

// DrawPolyline3 draws straight 3D segments through the given points,
// optionally closing the polygon.
func (c *Canvas) DrawPolyline3(points []Point3, closed bool) error {
	if len(points) < 2 {
		return invalidParamf("polyline needs at least 2 points (got %d)", len(points))
	}
	c.buffer.WriteString("xyz=np.array([")
	for _, p := range points {
		fmt.Fprintf(&c.buffer, "[%s,%s,%s],", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	if closed && len(points) > 2 {
		p := points[0]
		fmt.Fprintf(&c.buffer, "[%s,%s,%s],", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	c.buffer.WriteString("])\n")
	opt := ""
	if c.EdgeColor != "" {
		opt = fmt.Sprintf(",color='%s'", c.EdgeColor)
	}
	fmt.Fprintf(&c.buffer, "ax3d().plot(xyz[:,0],xyz[:,1],xyz[:,2]%s)\n", opt)
	return nil
}

// DrawPath renders a Path (built with PathBuilder or assembled from
// PathElement values) as a patch (2D only). When closed is true and
// the path is not already closed, a close-poly command is appended so
// the region can be filled. The path must begin with a move.
func (c *Canvas) DrawPath(path Path, closed bool) error {
	if len(path) == 0 || path[0].Kind != MoveToKind {
		return malformedPathf("path must begin with a move")
	}
	c.buffer.WriteString("dat=[")
	for i, el := range path {
		sep := ","
		if i == 0 {
			sep = ""
		}
		switch el.Kind {
		case MoveToKind:
			fmt.Fprintf(&c.buffer, "%s[pth.Path.MOVETO,(%s,%s)]", sep, ftoa(el.P0.X), ftoa(el.P0.Y))
		case LineToKind:
			fmt.Fprintf(&c.buffer, "%s[pth.Path.LINETO,(%s,%s)]", sep, ftoa(el.P0.X), ftoa(el.P0.Y))
		case QuadToKind:
			fmt.Fprintf(&c.buffer, "%s[pth.Path.CURVE3,(%s,%s)],[pth.Path.CURVE3,(%s,%s)]",
				sep, ftoa(el.P0.X), ftoa(el.P0.Y), ftoa(el.P1.X), ftoa(el.P1.Y))
		case CubicToKind:
			fmt.Fprintf(&c.buffer, "%s[pth.Path.CURVE4,(%s,%s)],[pth.Path.CURVE4,(%s,%s)],[pth.Path.CURVE4,(%s,%s)]",
				sep, ftoa(el.P0.X), ftoa(el.P0.Y), ftoa(el.P1.X), ftoa(el.P1.Y), ftoa(el.P2.X), ftoa(el.P2.Y))
		case ClosePathKind:
			fmt.Fprintf(&c.buffer, "%s[pth.Path.CLOSEPOLY,(None,None)]", sep)
		default:
			return malformedPathf("unknown path element kind %d", el.Kind)
		}
	}
	if closed && !path.Closed() {
		c.buffer.WriteString(",[pth.Path.CLOSEPOLY,(None,None)]")
	}
	c.patchBlock()
	return nil
}

// DrawPolycurve validates the (point, pen-command) sequence with a
// PathBuilder and renders the resulting path (2D only).
func (c *Canvas) DrawPolycurve(points []Point, codes []PolyCode, closed bool) error {
	if len(points) < 3 {
		return invalidParamf("polycurve needs at least 3 points (got %d)", len(points))
	}
	if len(codes) != len(points) {
		return invalidParamf("polycurve needs one code per point (got %d codes for %d points)",
			len(codes), len(points))
	}
	b := BuildPath()
	for i, p := range points {
		b.Add(p.X, p.Y, codes[i])
	}
	path, err := b.Finish(closed)
	if err != nil {
		return err
	}
	return c.DrawPath(path, closed)
}

// PolycurveBegin starts streaming a polycurve directly into the
// buffer. Entries added with PolycurveAdd are not validated; use
// PathBuilder plus DrawPath for checked construction. PolycurveEnd
// must be called last.
func (c *Canvas) PolycurveBegin() {
	c.buffer.WriteString("dat=[")
}

// PolycurveAdd streams one (x, y, code) entry of a polycurve.
func (c *Canvas) PolycurveAdd(x, y float64, code PolyCode) {
	keyword := "MOVETO"
	switch code {
	case CodeLineTo:
		keyword = "LINETO"
	case CodeCurve3:
		keyword = "CURVE3"
	case CodeCurve4:
		keyword = "CURVE4"
	case CodeClosePoly:
		c.buffer.WriteString("[pth.Path.CLOSEPOLY,(None,None)],")
		return
	}
	fmt.Fprintf(&c.buffer, "[pth.Path.%s,(%s,%s)],", keyword, ftoa(x), ftoa(y))
}

// PolycurveEnd ends a streamed polycurve, optionally closing it.
func (c *Canvas) PolycurveEnd(closed bool) {
	if closed {
		c.buffer.WriteString("[pth.Path.CLOSEPOLY,(None,None)]")
	}
	c.patchBlock()
}

// patchBlock terminates a dat=[...] command list and adds the patch.
func (c *Canvas) patchBlock() {
	fmt.Fprintf(&c.buffer, "]\ncmd,pts=zip(*dat)\nh=pth.Path(pts,cmd)\np=pat.PathPatch(h%s)\nplt.gca().add_patch(p)\n",
		c.optionsShared())
}

func (c *Canvas) optionsShared() string {
	var opt strings.Builder
	if c.EdgeColor != "" {
		fmt.Fprintf(&opt, ",edgecolor='%s'", c.EdgeColor)
	}
	if c.FaceColor != "" {
		fmt.Fprintf(&opt, ",facecolor='%s'", c.FaceColor)
	}
	if c.LineWidth > 0 {
		fmt.Fprintf(&opt, ",linewidth=%s", ftoa(c.LineWidth))
	}
	if c.LineStyle != "" {
		fmt.Fprintf(&opt, ",linestyle='%s'", c.LineStyle)
	}
	if c.StopClip {
		opt.WriteString(",clip_on=False")
	}
	return opt.String()
}

func (c *Canvas) optionsArrow() string {
	var opt strings.Builder
	if c.ArrowScale > 0 {
		fmt.Fprintf(&opt, ",mutation_scale=%s", ftoa(c.ArrowScale))
	}
	if c.ArrowStyle != "" {
		fmt.Fprintf(&opt, ",arrowstyle='%s'", c.ArrowStyle)
	}
	return opt.String()
}

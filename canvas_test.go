package plotpy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasShapes(t *testing.T) {
	c := NewCanvas()
	c.LineWidth = 3
	c.EdgeColor = "#cd0000"
	c.FaceColor = "#eeea83"
	c.DrawCircle(0.5, 0.5, 0.5)
	c.DrawArc(0.5, 0.5, 0.4, 195, -15)
	c.DrawRectangle(0, 0, 2, 1)
	buf := c.Buffer()
	assert.Contains(t, buf, "p=pat.Circle((0.5,0.5),0.5,edgecolor='#cd0000',facecolor='#eeea83',linewidth=3)\nplt.gca().add_patch(p)\n")
	assert.Contains(t, buf, "p=pat.Arc((0.5,0.5),2*0.4,2*0.4,theta1=195,theta2=-15,angle=0")
	assert.Contains(t, buf, "p=pat.Rectangle((0,0),2,1")
}

func TestCanvasArrow(t *testing.T) {
	c := NewCanvas()
	c.ArrowScale = 50
	c.ArrowStyle = "fancy"
	c.DrawArrow(0.4, 0.3, 0.6, 0.5)
	buf := c.Buffer()
	assert.Contains(t, buf, "p=pat.FancyArrowPatch((0.4,0.3),(0.6,0.5)")
	assert.Contains(t, buf, ",mutation_scale=50,arrowstyle='fancy'")
}

func TestCanvasPolyline(t *testing.T) {
	c := NewCanvas()
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(0.5, 1)}
	assert.NoError(t, c.DrawPolyline(pts, true))
	assert.Equal(t,
		"dat=[[pth.Path.MOVETO,(0,0)],[pth.Path.LINETO,(1,0)],[pth.Path.LINETO,(0.5,1)],[pth.Path.CLOSEPOLY,(None,None)]]\n"+
			"cmd,pts=zip(*dat)\n"+
			"h=pth.Path(pts,cmd)\n"+
			"p=pat.PathPatch(h)\n"+
			"plt.gca().add_patch(p)\n",
		c.Buffer())

	assert.True(t, errors.Is(c.DrawPolyline([]Point{Pt(0, 0)}, false), ErrInvalidParameter))
}

func TestCanvasPolyline3(t *testing.T) {
	c := NewCanvas()
	c.EdgeColor = "blue"
	pts := []Point3{Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(1, 1, 1)}
	assert.NoError(t, c.DrawPolyline3(pts, true))
	buf := c.Buffer()
	// closed polyline repeats the first point
	assert.Contains(t, buf, "xyz=np.array([[0,0,0],[1,0,0],[1,1,1],[0,0,0],])\n")
	assert.Contains(t, buf, "ax3d().plot(xyz[:,0],xyz[:,1],xyz[:,2],color='blue')\n")
}

func TestCanvasDrawPath(t *testing.T) {
	path := Path{
		MoveTo(Pt(3, 0)),
		CubicTo(Pt(1, 1.5), Pt(0, 4), Pt(2.5, 3.9)),
		LineTo(Pt(3, 3.8)),
		QuadTo(Pt(4, 4), Pt(5, 3)),
	}
	c := NewCanvas()
	assert.NoError(t, c.DrawPath(path, true))
	buf := c.Buffer()
	assert.Contains(t, buf, "dat=[[pth.Path.MOVETO,(3,0)]")
	assert.Contains(t, buf, ",[pth.Path.CURVE4,(1,1.5)],[pth.Path.CURVE4,(0,4)],[pth.Path.CURVE4,(2.5,3.9)]")
	assert.Contains(t, buf, ",[pth.Path.LINETO,(3,3.8)]")
	assert.Contains(t, buf, ",[pth.Path.CURVE3,(4,4)],[pth.Path.CURVE3,(5,3)]")
	assert.Contains(t, buf, ",[pth.Path.CLOSEPOLY,(None,None)]]\n")
}

func TestCanvasDrawPathMustBeginWithMove(t *testing.T) {
	c := NewCanvas()
	err := c.DrawPath(Path{LineTo(Pt(1, 1))}, false)
	assert.True(t, errors.Is(err, ErrMalformedPath))
	assert.True(t, errors.Is(c.DrawPath(nil, false), ErrMalformedPath))
}

func TestCanvasDrawPolycurve(t *testing.T) {
	pts := []Point{{3, 0}, {1, 1.5}, {0, 4}, {2.5, 3.9}}
	codes := []PolyCode{CodeMoveTo, CodeCurve4, CodeCurve4, CodeCurve4}
	c := NewCanvas()
	assert.NoError(t, c.DrawPolycurve(pts, codes, true))
	assert.Contains(t, c.Buffer(), "CURVE4")

	// incomplete cubic group
	c = NewCanvas()
	err := c.DrawPolycurve(
		[]Point{{0, 0}, {1, 1}, {2, 2}},
		[]PolyCode{CodeMoveTo, CodeCurve4, CodeCurve4},
		false)
	assert.True(t, errors.Is(err, ErrMalformedPath))

	// count mismatch
	err = c.DrawPolycurve(pts, codes[:3], false)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestCanvasPolycurveStreaming(t *testing.T) {
	c := NewCanvas()
	c.FaceColor = "#f88989"
	c.PolycurveBegin()
	c.PolycurveAdd(3, 0, CodeMoveTo)
	c.PolycurveAdd(1, 1.5, CodeCurve4)
	c.PolycurveAdd(0, 4, CodeCurve4)
	c.PolycurveAdd(2.5, 3.9, CodeCurve4)
	c.PolycurveEnd(true)
	assert.Equal(t,
		"dat=[[pth.Path.MOVETO,(3,0)],[pth.Path.CURVE4,(1,1.5)],[pth.Path.CURVE4,(0,4)],[pth.Path.CURVE4,(2.5,3.9)],[pth.Path.CLOSEPOLY,(None,None)]]\n"+
			"cmd,pts=zip(*dat)\n"+
			"h=pth.Path(pts,cmd)\n"+
			"p=pat.PathPatch(h,facecolor='#f88989')\n"+
			"plt.gca().add_patch(p)\n",
		c.Buffer())
}

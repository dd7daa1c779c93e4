package plotpy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceDraw(t *testing.T) {
	s := NewSurface()
	x := [][]float64{{0, 1}, {0, 1}}
	y := [][]float64{{0, 0}, {1, 1}}
	z := [][]float64{{0, 1}, {1, 2}}
	assert.NoError(t, s.Draw(x, y, z))
	buf := s.Buffer()
	assert.Contains(t, buf, "x=np.array([[0,1,],[0,1,],],dtype=float)\n")
	assert.Contains(t, buf, "sf=ax3d().plot_surface(x,y,z,cmap=get_colormap(0))\n")
	assert.NotContains(t, buf, "plot_wireframe")
	assert.NotContains(t, buf, "colorbar")
}

func TestSurfaceWireframeOnly(t *testing.T) {
	s := NewSurface()
	s.NoSurface = true
	s.Wireframe = true
	s.LineColor = "black"
	s.LineWidth = 0.3
	x := [][]float64{{0, 1}, {0, 1}}
	assert.NoError(t, s.Draw(x, x, x))
	buf := s.Buffer()
	assert.NotContains(t, buf, "plot_surface")
	assert.Contains(t, buf, "ax3d().plot_wireframe(x,y,z,color='black',linewidth=0.3)\n")
}

func TestSurfaceColorbar(t *testing.T) {
	s := NewSurface()
	s.Colorbar = true
	s.ColorbarLabel = "height"
	s.ColorbarNumberFormat = "%.1f"
	s.ColormapName = "seismic"
	x := [][]float64{{0, 1}, {0, 1}}
	assert.NoError(t, s.Draw(x, x, x))
	buf := s.Buffer()
	assert.Contains(t, buf, ",cmap=plt.get_cmap('seismic')")
	assert.Contains(t, buf, "cb=plt.colorbar(sf,format='%.1f')\n")
	assert.Contains(t, buf, "cb.ax.set_ylabel(r'height')\n")
}

func TestSurfaceStrides(t *testing.T) {
	s := NewSurface()
	s.RowStride = 2
	s.ColStride = 3
	x := [][]float64{{0, 1}, {0, 1}}
	assert.NoError(t, s.Draw(x, x, x))
	assert.Contains(t, s.Buffer(), ",rstride=2,cstride=3")
}

func TestSurfaceDrawSphere(t *testing.T) {
	s := NewSurface()
	g, err := s.DrawSphere(Pt3(0, 0, 0), 2, 9, 9)
	assert.NoError(t, err)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			assert.InDelta(t, 2, g.At(i, j).Length(), 1e-9)
		}
	}
	assert.Contains(t, s.Buffer(), "plot_surface")
}

func TestSurfaceDrawSuperquadricInvalid(t *testing.T) {
	s := NewSurface()
	p := validSuperquadric()
	p.Exponents[0] = -1
	_, err := s.DrawSuperquadric(p)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Empty(t, s.Buffer(), "failed draws must not write commands")
}

func TestSurfaceDrawCylinder(t *testing.T) {
	s := NewSurface()
	g, err := s.DrawCylinder(Pt3(0, 0, 0), Pt3(1, 1, 1), 0.5, 3, 19)
	assert.NoError(t, err)
	assert.Equal(t, 19, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Contains(t, s.Buffer(), "plot_surface")
}

func TestSurfaceDrawPlane(t *testing.T) {
	s := NewSurface()
	g, err := s.DrawPlane(Pt3(0, 0, 2), Pt3(0, 0, 1), -1, 1, -1, 1, 3, 3)
	assert.NoError(t, err)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			assert.True(t, math.Abs(g.Z[i][j]-2) < 1e-12)
		}
	}
}

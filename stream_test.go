package plotpy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func streamField() (xx, yy, dx, dy [][]float64) {
	xx = [][]float64{{0, 1}, {0, 1}}
	yy = [][]float64{{0, 0}, {1, 1}}
	dx = [][]float64{{1, 1}, {1, 1}}
	dy = [][]float64{{0, 0.5}, {0, 0.5}}
	return
}

func TestStreamDraw(t *testing.T) {
	s := NewStream()
	s.Color = "blue"
	s.StreamLineWidth = 2
	s.StreamDensity = 0.5
	xx, yy, dx, dy := streamField()
	assert.NoError(t, s.Draw(xx, yy, dx, dy))
	assert.Equal(t,
		"xx=np.array([[0,1,],[0,1,],],dtype=float)\n"+
			"yy=np.array([[0,0,],[1,1,],],dtype=float)\n"+
			"dx=np.array([[1,1,],[1,1,],],dtype=float)\n"+
			"dy=np.array([[0,0.5,],[0,0.5,],],dtype=float)\n"+
			"plt.streamplot(xx,yy,dx,dy,color='blue',linewidth=2,density=0.5)\n",
		s.Buffer())
}

func TestStreamDrawArrows(t *testing.T) {
	s := NewStream()
	s.QuiverScale = 30
	s.QuiverPivot = "middle"
	xx, yy, dx, dy := streamField()
	assert.NoError(t, s.DrawArrows(xx, yy, dx, dy))
	assert.Contains(t, s.Buffer(), "plt.quiver(xx,yy,dx,dy,scale=30,pivot='middle')\n")
}

func TestStreamShapeMismatch(t *testing.T) {
	s := NewStream()
	xx, yy, dx, _ := streamField()
	err := s.Draw(xx, yy, dx, [][]float64{{0, 0}})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Equal(t, "", s.Buffer())
}

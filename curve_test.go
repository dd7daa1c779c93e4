package plotpy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurveOptions(t *testing.T) {
	c := NewCurve()
	c.LineAlpha = 0.7
	c.LineColor = "#b33434"
	c.LineStyle = "-"
	c.LineWidth = 3
	c.MarkerColor = "#4c4deb"
	c.MarkerEvery = 2
	c.MarkerLineColor = "blue"
	c.MarkerLineWidth = 1.5
	c.MarkerSize = 8
	c.MarkerStyle = "o"
	assert.Equal(t,
		",alpha=0.7"+
			",color='#b33434'"+
			",linestyle='-'"+
			",linewidth=3"+
			",markerfacecolor='#4c4deb'"+
			",markevery=2"+
			",markeredgecolor='blue'"+
			",markeredgewidth=1.5"+
			",markersize=8"+
			",marker='o'",
		c.options())
}

func TestCurveVoidMarkerDefaultsLineColor(t *testing.T) {
	c := NewCurve()
	c.MarkerVoid = true
	assert.Contains(t, c.options(), ",color='red'")
	assert.Contains(t, c.options(), ",markerfacecolor='none'")
}

func TestCurveDraw(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 4, 9, 16, 25}
	c := NewCurve()
	assert.NoError(t, c.Draw(x, y))
	assert.Equal(t,
		"x=np.array([1,2,3,4,5,],dtype=float)\n"+
			"y=np.array([1,4,9,16,25,],dtype=float)\n"+
			"plt.plot(x,y)\n",
		c.Buffer())
}

func TestCurveDraw3(t *testing.T) {
	c := NewCurve()
	assert.NoError(t, c.Draw3([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}))
	assert.Contains(t, c.Buffer(), "ax3d().plot(x,y,z)\n")
}

func TestCurveDrawInvalid(t *testing.T) {
	c := NewCurve()
	err := c.Draw(nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	err = c.Draw([]float64{1, 2}, []float64{1})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	err = c.Draw3([]float64{1}, []float64{1}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Empty(t, c.Buffer(), "failed draws must not write commands")
}

func TestCurveLabel(t *testing.T) {
	c := NewCurve()
	c.Label = "it's data"
	assert.NoError(t, c.Draw([]float64{0, 1}, []float64{0, 1}))
	assert.Contains(t, c.Buffer(), `label=r'it\'s data'`)
}

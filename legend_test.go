package plotpy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegendDrawDefaults(t *testing.T) {
	l := NewLegend()
	l.Draw()
	assert.Equal(t,
		"h,lb=plt.gca().get_legend_handles_labels()\n"+
			"if len(h)>0 and len(lb)>0:\n"+
			"    leg=plt.legend(handlelength=3,ncol=1,loc='best')\n"+
			"    add_to_ea(leg)\n",
		l.Buffer())
}

func TestLegendOutside(t *testing.T) {
	l := NewLegend()
	l.Outside = true
	l.NumberColumns = 2
	l.ShowFrame = false
	l.Draw()
	assert.Contains(t, l.Buffer(),
		"plt.legend(handlelength=3,ncol=2,bbox_to_anchor=(0,1.02,1,0.102),mode='expand',borderaxespad=0.0,frameon=False)\n")
}

func TestLegendOutsideBadCoordinates(t *testing.T) {
	l := NewLegend()
	l.Outside = true
	l.Coordinates = []float64{1, 2}
	l.Draw()
	// falls back to the default bbox when the coordinates are not 4 long
	assert.Contains(t, l.Buffer(), "bbox_to_anchor=(0,1.02,1,0.102)")
}

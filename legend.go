// legend.go

package plotpy

import (
	"fmt"
	"strings"
)

// Legend adds a legend collecting the labels of previously drawn
// objects. Call Draw after the labelled objects have been added to the
// plot.
type Legend struct {
	ShowFrame       bool      // show a frame around the legend
	LengthIndicator float64   // length of the indicator line
	Location        string    // e.g. "best", "right", "center left"
	NumberColumns   int       // number of columns
	Outside         bool      // put the legend outside the axes
	Coordinates     []float64 // normalized bbox coordinates used when Outside is set

	buffer strings.Builder
}

// NewLegend creates a new Legend object with sensible defaults.
func NewLegend() *Legend {
	return &Legend{
		ShowFrame:       true,
		LengthIndicator: 3,
		Location:        "best",
		NumberColumns:   1,
		Coordinates:     []float64{0, 1.02, 1, 0.102},
	}
}

// Buffer returns the accumulated python commands.
func (l *Legend) Buffer() string {
	return l.buffer.String()
}

// Draw generates the legend. Objects without labels are skipped by
// Matplotlib; an empty legend is not added at all.
func (l *Legend) Draw() {
	l.buffer.WriteString("h,lb=plt.gca().get_legend_handles_labels()\n")
	l.buffer.WriteString("if len(h)>0 and len(lb)>0:\n")
	fmt.Fprintf(&l.buffer, "    leg=plt.legend(%s)\n", l.options())
	l.buffer.WriteString("    add_to_ea(leg)\n")
}

func (l *Legend) options() string {
	var opt strings.Builder
	if l.LengthIndicator > 0 {
		fmt.Fprintf(&opt, "handlelength=%s,", ftoa(l.LengthIndicator))
	}
	if l.NumberColumns > 0 {
		fmt.Fprintf(&opt, "ncol=%d,", l.NumberColumns)
	}
	if l.Outside {
		coords := l.Coordinates
		if len(coords) != 4 {
			coords = []float64{0, 1.02, 1, 0.102}
		}
		fmt.Fprintf(&opt, "bbox_to_anchor=(%s,%s,%s,%s),mode='expand',borderaxespad=0.0,",
			ftoa(coords[0]), ftoa(coords[1]), ftoa(coords[2]), ftoa(coords[3]))
	} else if l.Location != "" {
		fmt.Fprintf(&opt, "loc='%s',", l.Location)
	}
	if !l.ShowFrame {
		opt.WriteString("frameon=False,")
	}
	return strings.TrimSuffix(opt.String(), ",")
}

// histogram.go

package plotpy

import (
	"fmt"
	"strings"
)

// Histogram generates a histogram plot from one or more series of
// values, each with a label for the legend.
type Histogram struct {
	Colors     []string // colors, one per series
	Style      string   // type of histogram, e.g. "bar", "step"
	Stacked    bool     // stack multiple series
	NoFill     bool     // do not fill the bars
	NumberBins int      // number of bins
	Normalized bool     // draw a probability density instead of counts

	buffer strings.Builder
}

// NewHistogram creates a new Histogram object.
func NewHistogram() *Histogram {
	return &Histogram{}
}

// Buffer returns the accumulated python commands.
func (h *Histogram) Buffer() string {
	return h.buffer.String()
}

// Draw generates the histogram from a list of series and one label per
// series.
func (h *Histogram) Draw(values [][]float64, labels []string) error {
	if len(values) == 0 {
		return invalidParamf("histogram needs at least one series")
	}
	if len(labels) != len(values) {
		return invalidParamf("histogram needs one label per series (got %d labels for %d series)",
			len(labels), len(values))
	}
	h.buffer.WriteString("values=[")
	for _, row := range values {
		fmt.Fprintf(&h.buffer, "%s,", floatList(row))
	}
	h.buffer.WriteString("]\n")
	writeStrings(&h.buffer, "labels", labels)
	fmt.Fprintf(&h.buffer, "plt.hist(values,label=labels%s)\n", h.options())
	return nil
}

func (h *Histogram) options() string {
	var opt strings.Builder
	if len(h.Colors) > 0 {
		fmt.Fprintf(&opt, ",color=%s", stringList(h.Colors))
	}
	if h.Style != "" {
		fmt.Fprintf(&opt, ",histtype='%s'", h.Style)
	}
	if h.Stacked {
		opt.WriteString(",stacked=True")
	}
	if h.NoFill {
		opt.WriteString(",fill=False")
	}
	if h.NumberBins > 0 {
		fmt.Fprintf(&opt, ",bins=%d", h.NumberBins)
	}
	if h.Normalized {
		opt.WriteString(",density=True")
	}
	return opt.String()
}

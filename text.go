// text.go

package plotpy

import (
	"fmt"
	"strings"
)

// Text places a string at a data coordinate in a 2D or 3D plot.
type Text struct {
	Color     string  // text color
	AlignH    string  // horizontal alignment, e.g. "center", "left"
	AlignV    string  // vertical alignment, e.g. "center", "bottom"
	Rotation  float64 // rotation in degrees
	FontSize  float64 // font size
	Extra     string  // extra text arguments, comma separated

	buffer strings.Builder
}

// NewText creates a new Text object.
func NewText() *Text {
	return &Text{}
}

// Buffer returns the accumulated python commands.
func (t *Text) Buffer() string {
	return t.buffer.String()
}

// Draw places the message at (x, y).
func (t *Text) Draw(x, y float64, message string) {
	fmt.Fprintf(&t.buffer, "tx=plt.text(%s,%s,r'%s'%s)\nadd_to_ea(tx)\n",
		ftoa(x), ftoa(y), pyEscape(message), t.options())
}

// Draw3 places the message at (x, y, z) in a 3D plot.
func (t *Text) Draw3(x, y, z float64, message string) {
	fmt.Fprintf(&t.buffer, "tx=ax3d().text(%s,%s,%s,r'%s'%s)\nadd_to_ea(tx)\n",
		ftoa(x), ftoa(y), ftoa(z), pyEscape(message), t.options())
}

func (t *Text) options() string {
	var opt strings.Builder
	if t.Color != "" {
		fmt.Fprintf(&opt, ",color='%s'", t.Color)
	}
	if t.AlignH != "" {
		fmt.Fprintf(&opt, ",ha='%s'", t.AlignH)
	}
	if t.AlignV != "" {
		fmt.Fprintf(&opt, ",va='%s'", t.AlignV)
	}
	if t.Rotation != 0 {
		fmt.Fprintf(&opt, ",rotation=%s", ftoa(t.Rotation))
	}
	if t.FontSize > 0 {
		fmt.Fprintf(&opt, ",fontsize=%s", ftoa(t.FontSize))
	}
	if t.Extra != "" {
		opt.WriteString("," + t.Extra)
	}
	return opt.String()
}

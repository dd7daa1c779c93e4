// stream.go

package plotpy

import (
	"fmt"
	"strings"
)

// Stream illustrates vector fields using streamlines or quiver
// (arrow) plots over matrices of positions and field components.
type Stream struct {
	Color string // line or arrow color

	StreamLineWidth  float64 // streamplot line width
	StreamArrowStyle string  // streamplot arrow style
	StreamDensity    float64 // streamplot density

	QuiverScale float64 // quiver arrow scale (data units per arrow length unit)
	QuiverPivot string  // part of the arrow anchored at the grid point, e.g. "middle"

	buffer strings.Builder
}

// NewStream creates a new Stream object.
func NewStream() *Stream {
	return &Stream{}
}

// Buffer returns the accumulated python commands.
func (s *Stream) Buffer() string {
	return s.buffer.String()
}

// Draw generates a streamline plot from position matrices (xx, yy) and
// field component matrices (dx, dy), all of identical shape.
func (s *Stream) Draw(xx, yy, dx, dy [][]float64) error {
	if err := s.writeField(xx, yy, dx, dy); err != nil {
		return err
	}
	fmt.Fprintf(&s.buffer, "plt.streamplot(xx,yy,dx,dy%s)\n", s.optionsStream())
	return nil
}

// DrawArrows generates a quiver plot from position matrices (xx, yy)
// and field component matrices (dx, dy), all of identical shape.
func (s *Stream) DrawArrows(xx, yy, dx, dy [][]float64) error {
	if err := s.writeField(xx, yy, dx, dy); err != nil {
		return err
	}
	fmt.Fprintf(&s.buffer, "plt.quiver(xx,yy,dx,dy%s)\n", s.optionsQuiver())
	return nil
}

func (s *Stream) writeField(xx, yy, dx, dy [][]float64) error {
	if err := checkMatrices(xx, yy, dx); err != nil {
		return err
	}
	if err := checkMatrices(xx, yy, dy); err != nil {
		return err
	}
	writeMatrix(&s.buffer, "xx", xx)
	writeMatrix(&s.buffer, "yy", yy)
	writeMatrix(&s.buffer, "dx", dx)
	writeMatrix(&s.buffer, "dy", dy)
	return nil
}

func (s *Stream) optionsStream() string {
	var opt strings.Builder
	if s.Color != "" {
		fmt.Fprintf(&opt, ",color='%s'", s.Color)
	}
	if s.StreamLineWidth > 0 {
		fmt.Fprintf(&opt, ",linewidth=%s", ftoa(s.StreamLineWidth))
	}
	if s.StreamArrowStyle != "" {
		fmt.Fprintf(&opt, ",arrowstyle='%s'", s.StreamArrowStyle)
	}
	if s.StreamDensity > 0 {
		fmt.Fprintf(&opt, ",density=%s", ftoa(s.StreamDensity))
	}
	return opt.String()
}

func (s *Stream) optionsQuiver() string {
	var opt strings.Builder
	if s.Color != "" {
		fmt.Fprintf(&opt, ",color='%s'", s.Color)
	}
	if s.QuiverScale > 0 {
		fmt.Fprintf(&opt, ",scale=%s", ftoa(s.QuiverScale))
	}
	if s.QuiverPivot != "" {
		fmt.Fprintf(&opt, ",pivot='%s'", s.QuiverPivot)
	}
	return opt.String()
}

// path.go

package plotpy

import "fmt"

// PathElementKind identifies the variant of a PathElement.
type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a
	// new subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bezier using the current location, one control
	// point, and the endpoint.
	QuadToKind
	// Draw a cubic Bezier using the current location, two control
	// points, and the endpoint.
	CubicToKind
	// Close off the path back to the start of the subpath.
	ClosePathKind
)

// PathElement is one drawing instruction of a vector path. It is a
// tagged variant: Kind selects which of P0, P1, P2 are meaningful.
// MoveTo and LineTo use P0 as the endpoint; QuadTo uses P0 as control
// and P1 as endpoint; CubicTo uses P0 and P1 as controls and P2 as
// endpoint; ClosePath carries no points.
type PathElement struct {
	Kind       PathElementKind
	P0, P1, P2 Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%g, %g)", el.P0.X, el.P0.Y)
	case LineToKind:
		return fmt.Sprintf("LineTo(%g, %g)", el.P0.X, el.P0.Y)
	case QuadToKind:
		return fmt.Sprintf("QuadTo((%g, %g), (%g, %g))", el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
	case CubicToKind:
		return fmt.Sprintf("CubicTo((%g, %g), (%g, %g), (%g, %g))",
			el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// MoveTo returns a move-to element.
func MoveTo(p Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: p}
}

// LineTo returns a line-to element.
func LineTo(p Point) PathElement {
	return PathElement{Kind: LineToKind, P0: p}
}

// QuadTo returns a quadratic Bezier element with control point c and
// endpoint p.
func QuadTo(c, p Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: c, P1: p}
}

// CubicTo returns a cubic Bezier element with control points c1, c2
// and endpoint p.
func CubicTo(c1, c2, p Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: c1, P1: c2, P2: p}
}

// ClosePath returns a close-path element.
func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is an ordered sequence of drawing instructions. A valid Path
// starts with a MoveTo and may optionally end with a ClosePath.
type Path []PathElement

// Closed reports whether the path ends with a ClosePath element.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

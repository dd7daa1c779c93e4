// path_builder.go

package plotpy

// PolyCode is a pen command: a tag indicating how a coordinate should
// be connected to the path being built.
//
// Reference: [Matplotlib path API](https://matplotlib.org/stable/api/path_api.html)
type PolyCode int

const (
	// CodeMoveTo picks up the pen and moves to the given vertex.
	CodeMoveTo PolyCode = iota + 1
	// CodeLineTo draws a line from the current position to the vertex.
	CodeLineTo
	// CodeCurve3 tags one entry of a quadratic Bezier group: one
	// control point followed by one endpoint, both tagged CodeCurve3.
	CodeCurve3
	// CodeCurve4 tags one entry of a cubic Bezier group: two control
	// points followed by one endpoint, all tagged CodeCurve4.
	CodeCurve4
	// CodeClosePoly closes the polygon back to the start of the
	// subpath. The coordinates of a close entry are ignored.
	CodeClosePoly
)

func (c PolyCode) String() string {
	switch c {
	case CodeMoveTo:
		return "MoveTo"
	case CodeLineTo:
		return "LineTo"
	case CodeCurve3:
		return "Curve3"
	case CodeCurve4:
		return "Curve4"
	case CodeClosePoly:
		return "ClosePoly"
	default:
		return "InvalidPolyCode"
	}
}

// arity returns the number of consecutive same-tagged entries a curve
// group needs (controls plus endpoint), or 1 for plain commands.
func (c PolyCode) arity() int {
	switch c {
	case CodeCurve3:
		return 2
	case CodeCurve4:
		return 3
	default:
		return 1
	}
}

// PathBuilder converts a stream of (x, y, pen-command) entries into a
// Path. The first entry must be a move; Curve3 and Curve4 entries are
// grouped positionally into complete Bezier elements; after a close
// only a move may follow, starting a new subpath. A builder is
// single-use: after Finish it accepts no more entries.
//
// Errors are sticky. The first violation is remembered and reported by
// Err and Finish; entries added after a violation are ignored.
type PathBuilder struct {
	path    Path
	pending []Point // buffered entries of an incomplete curve group
	curve   PolyCode
	err     error
	closed  bool // the last entry was a close; only a move may follow
	done    bool
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{}
}

// Add appends one (x, y, code) entry to the path under construction.
// It returns the builder for chaining.
func (b *PathBuilder) Add(x, y float64, code PolyCode) *PathBuilder {
	if b.err != nil || b.done {
		return b
	}
	if len(b.path) == 0 && len(b.pending) == 0 && code != CodeMoveTo {
		b.err = malformedPathf("path must begin with a move (got %s)", code)
		return b
	}
	if b.closed {
		if code != CodeMoveTo {
			b.err = malformedPathf("entry after a close must start a new subpath with a move (got %s)", code)
			return b
		}
		b.closed = false
	}
	if len(b.pending) > 0 && code != b.curve {
		b.err = malformedPathf("incomplete %s group: got %d of %d entries, then %s",
			b.curve, len(b.pending), b.curve.arity(), code)
		return b
	}
	switch code {
	case CodeMoveTo:
		b.path = append(b.path, MoveTo(Pt(x, y)))
	case CodeLineTo:
		b.path = append(b.path, LineTo(Pt(x, y)))
	case CodeCurve3, CodeCurve4:
		b.pending = append(b.pending, Pt(x, y))
		b.curve = code
		if len(b.pending) == code.arity() {
			if code == CodeCurve3 {
				b.path = append(b.path, QuadTo(b.pending[0], b.pending[1]))
			} else {
				b.path = append(b.path, CubicTo(b.pending[0], b.pending[1], b.pending[2]))
			}
			b.pending = b.pending[:0]
		}
	case CodeClosePoly:
		b.path = append(b.path, ClosePath())
		b.closed = true
	default:
		b.err = malformedPathf("unknown pen command %d", code)
	}
	return b
}

// Err returns the first violation encountered so far, or nil.
func (b *PathBuilder) Err() error {
	return b.err
}

// Finish ends the path and returns it. When closed is true a ClosePath
// element is appended (forming a filled or closed region); otherwise
// the path is left open. Finish fails with ErrMalformedPath when the
// path is empty, when the entry stream violated the command ordering,
// or when a curve group is missing entries.
func (b *PathBuilder) Finish(closed bool) (Path, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.pending) > 0 {
		return nil, malformedPathf("incomplete %s group: got %d of %d entries",
			b.curve, len(b.pending), b.curve.arity())
	}
	if len(b.path) == 0 {
		return nil, malformedPathf("path must begin with a move (got no entries)")
	}
	if closed && !b.path.Closed() {
		b.path = append(b.path, ClosePath())
	}
	b.done = true
	return b.path, nil
}

package plotpy

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(4, 6)
	if got := p.Add(q); got != Pt(5, 8) {
		t.Errorf("Add = %+v", got)
	}
	if got := q.Sub(p); got != Pt(3, 4) {
		t.Errorf("Sub = %+v", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %+v", got)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := p.Lerp(q, 0.5); got != Pt(2.5, 4) {
		t.Errorf("Lerp = %+v", got)
	}
}

func TestPoint3Ops(t *testing.T) {
	p := Pt3(1, 0, 0)
	q := Pt3(0, 1, 0)
	if got := p.Cross(q); got != Pt3(0, 0, 1) {
		t.Errorf("Cross = %+v", got)
	}
	if got := p.Dot(q); got != 0 {
		t.Errorf("Dot = %v", got)
	}
	v := Pt3(3, 4, 12)
	if got := v.Length(); got != 13 {
		t.Errorf("Length = %v, want 13", got)
	}
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-15 {
		t.Errorf("Normalize length = %v", n.Length())
	}
	if got := (Point3{}).Normalize(); got != (Point3{}) {
		t.Errorf("Normalize zero = %+v", got)
	}
}

func TestAlignedBasis(t *testing.T) {
	for _, axis := range []Point3{Pt3(0, 0, 1), Pt3(1, 0, 0), Pt3(1, 1, 1), Pt3(0, -2, 0.1)} {
		e0, e1, e2 := alignedBasis(axis)
		if math.Abs(e0.Length()-1) > 1e-12 || math.Abs(e1.Length()-1) > 1e-12 || math.Abs(e2.Length()-1) > 1e-12 {
			t.Fatalf("basis for %+v is not unit length", axis)
		}
		if math.Abs(e0.Dot(e1)) > 1e-12 || math.Abs(e0.Dot(e2)) > 1e-12 || math.Abs(e1.Dot(e2)) > 1e-12 {
			t.Fatalf("basis for %+v is not orthogonal", axis)
		}
	}
}

// superquadric.go

package plotpy

import "math"

// sign implements the sign function: -1 for x < 0, 1 for x > 0, and 0
// for x = 0.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// suqSin is the superquadric auxiliary involving sin(x):
//
//	suqSin(x;k) = sign(sin(x)) * |sin(x)|^k
func suqSin(x, k float64) float64 {
	return sign(math.Sin(x)) * math.Pow(math.Abs(math.Sin(x)), k)
}

// suqCos is the superquadric auxiliary involving cos(x):
//
//	suqCos(x;k) = sign(cos(x)) * |cos(x)|^k
func suqCos(x, k float64) float64 {
	return sign(math.Cos(x)) * math.Pow(math.Abs(math.Cos(x)), k)
}

// SuperquadricParams configures Superquadric. Angles are in degrees;
// alpha is the azimuth over [-180, 180] and theta the elevation over
// [-90, 90]. NAlpha and NTheta are sample counts per axis (inclusive
// of both endpoints) and must be at least 2.
//
// A params value is consumed by a single Superquadric call and carries
// no state.
type SuperquadricParams struct {
	Center    Point3     // center offset
	Radii     [3]float64 // semi-axis radii (rx, ry, rz), all > 0
	Exponents [3]float64 // shape exponents (kx, ky, kz), all > 0
	AlphaMin  float64    // min azimuth in [-180, 180)
	AlphaMax  float64    // max azimuth in (-180, 180]
	ThetaMin  float64    // min elevation in [-90, 90)
	ThetaMax  float64    // max elevation in (-90, 90]
	NAlpha    int        // number of samples along alpha (>= 2)
	NTheta    int        // number of samples along theta (>= 2)
}

func (p *SuperquadricParams) validate() error {
	for i, k := range p.Exponents {
		if k <= 0 {
			return invalidParamf("exponent k[%d] must be positive (got %g)", i, k)
		}
	}
	for i, r := range p.Radii {
		if r <= 0 {
			return invalidParamf("radius r[%d] must be positive (got %g)", i, r)
		}
	}
	if p.NAlpha < 2 || p.NTheta < 2 {
		return invalidParamf("superquadric needs NAlpha >= 2 and NTheta >= 2 (got %d, %d)", p.NAlpha, p.NTheta)
	}
	if p.AlphaMin < -180 || p.AlphaMax > 180 || p.AlphaMin >= p.AlphaMax {
		return invalidParamf("alpha domain [%g, %g] must be a non-empty subset of [-180, 180]", p.AlphaMin, p.AlphaMax)
	}
	if p.ThetaMin < -90 || p.ThetaMax > 90 || p.ThetaMin >= p.ThetaMax {
		return invalidParamf("theta domain [%g, %g] must be a non-empty subset of [-90, 90]", p.ThetaMin, p.ThetaMax)
	}
	return nil
}

// Superquadric computes a point grid on a generalized superquadric
// surface (includes the sphere, super-ellipsoid, and super-hyperboloid).
// The resulting grid has NAlpha rows and NTheta columns, with both
// angular ranges sampled linearly and inclusive of their endpoints.
//
// Reference: https://en.wikipedia.org/wiki/Superquadrics
func Superquadric(p SuperquadricParams) (*Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	aa := 2.0 / p.Exponents[0]
	bb := 2.0 / p.Exponents[1]
	cc := 2.0 / p.Exponents[2]
	aMin := p.AlphaMin * math.Pi / 180.0
	aMax := p.AlphaMax * math.Pi / 180.0
	tMin := p.ThetaMin * math.Pi / 180.0
	tMax := p.ThetaMax * math.Pi / 180.0
	dAlpha := (aMax - aMin) / float64(p.NAlpha-1)
	dTheta := (tMax - tMin) / float64(p.NTheta-1)
	g := &Grid{
		X: make([][]float64, p.NAlpha),
		Y: make([][]float64, p.NAlpha),
		Z: make([][]float64, p.NAlpha),
	}
	for i := 0; i < p.NAlpha; i++ {
		alpha := aMin + float64(i)*dAlpha
		g.X[i] = make([]float64, p.NTheta)
		g.Y[i] = make([]float64, p.NTheta)
		g.Z[i] = make([]float64, p.NTheta)
		for j := 0; j < p.NTheta; j++ {
			theta := tMin + float64(j)*dTheta
			g.X[i][j] = p.Center.X + p.Radii[0]*suqCos(theta, aa)*suqCos(alpha, aa)
			g.Y[i][j] = p.Center.Y + p.Radii[1]*suqCos(theta, bb)*suqSin(alpha, bb)
			g.Z[i][j] = p.Center.Z + p.Radii[2]*suqSin(theta, cc)
		}
	}
	return g, nil
}

// SphereGrid computes a point grid on a sphere. It is a superquadric
// with all exponents equal to 2, all radii equal to radius, and the
// full angular domain.
func SphereGrid(center Point3, radius float64, nAlpha, nTheta int) (*Grid, error) {
	return Superquadric(SuperquadricParams{
		Center:    center,
		Radii:     [3]float64{radius, radius, radius},
		Exponents: [3]float64{2, 2, 2},
		AlphaMin:  -180,
		AlphaMax:  180,
		ThetaMin:  -90,
		ThetaMax:  90,
		NAlpha:    nAlpha,
		NTheta:    nTheta,
	})
}

// HemisphereGrid computes a point grid on a hemisphere centered at
// center with the given radius. The azimuth spans [alphaMin, alphaMax]
// degrees with nAlpha samples and the polar angle spans a quarter turn
// with nTheta samples; both counts must be at least 2. When cup is
// true the hemisphere opens upward, like a cup.
func HemisphereGrid(center Point3, radius, alphaMin, alphaMax float64, nAlpha, nTheta int, cup bool) (*Grid, error) {
	if radius <= 0 {
		return nil, invalidParamf("radius must be positive (got %g)", radius)
	}
	if nAlpha < 2 || nTheta < 2 {
		return nil, invalidParamf("hemisphere needs nAlpha >= 2 and nTheta >= 2 (got %d, %d)", nAlpha, nTheta)
	}
	if alphaMin < -180 || alphaMax > 180 || alphaMin >= alphaMax {
		return nil, invalidParamf("alpha domain [%g, %g] must be a non-empty subset of [-180, 180]", alphaMin, alphaMax)
	}
	aMin := alphaMin * math.Pi / 180.0
	aMax := alphaMax * math.Pi / 180.0
	dAlpha := (aMax - aMin) / float64(nAlpha-1)
	dTheta := (math.Pi / 2.0) / float64(nTheta-1)
	g := &Grid{
		X: make([][]float64, nAlpha),
		Y: make([][]float64, nAlpha),
		Z: make([][]float64, nAlpha),
	}
	for i := 0; i < nAlpha; i++ {
		alpha := aMin + float64(i)*dAlpha
		g.X[i] = make([]float64, nTheta)
		g.Y[i] = make([]float64, nTheta)
		g.Z[i] = make([]float64, nTheta)
		for j := 0; j < nTheta; j++ {
			theta := float64(j) * dTheta
			g.X[i][j] = center.X + radius*math.Cos(alpha)*math.Sin(theta)
			g.Y[i][j] = center.Y + radius*math.Sin(alpha)*math.Sin(theta)
			if cup {
				g.Z[i][j] = center.Z - radius*math.Cos(theta)
			} else {
				g.Z[i][j] = center.Z + radius*math.Cos(theta)
			}
		}
	}
	return g, nil
}

// CylinderGrid computes a point grid on a cylinder whose centered axis
// runs from a to b. The perimeter is sampled with nPerimeter points
// (first and last coincide, so nPerimeter must be at least 4 to form a
// cross-section) and the axis with nAxis points (>= 2).
func CylinderGrid(a, b Point3, radius float64, nAxis, nPerimeter int) (*Grid, error) {
	if radius <= 0 {
		return nil, invalidParamf("radius must be positive (got %g)", radius)
	}
	if nAxis < 2 {
		return nil, invalidParamf("cylinder needs nAxis >= 2 (got %d)", nAxis)
	}
	if nPerimeter < 4 {
		return nil, invalidParamf("cylinder needs nPerimeter >= 4 (got %d)", nPerimeter)
	}
	axis := b.Sub(a)
	height := axis.Length()
	if height < 1e-14 {
		return nil, invalidParamf("cylinder axis (a to b) is too short")
	}
	e0, e1, e2 := alignedBasis(axis)
	dHeight := height / float64(nAxis-1)
	dAlpha := 2.0 * math.Pi / float64(nPerimeter-1)
	g := &Grid{
		X: make([][]float64, nPerimeter),
		Y: make([][]float64, nPerimeter),
		Z: make([][]float64, nPerimeter),
	}
	for i := 0; i < nPerimeter; i++ {
		v := float64(i) * dAlpha
		g.X[i] = make([]float64, nAxis)
		g.Y[i] = make([]float64, nAxis)
		g.Z[i] = make([]float64, nAxis)
		for j := 0; j < nAxis; j++ {
			u := float64(j) * dHeight
			p := a.Add(e0.Mul(u)).Add(e1.Mul(radius * math.Sin(v))).Add(e2.Mul(radius * math.Cos(v)))
			g.X[i][j] = p.X
			g.Y[i][j] = p.Y
			g.Z[i][j] = p.Z
		}
	}
	return g, nil
}

// PlaneGrid computes a point grid on the plane through point with the
// given normal vector, sampled over [xmin, xmax] x [ymin, ymax] with
// nx by ny points (each >= 2). The z-component of the normal must be
// nonzero; planes parallel to the z axis cannot be expressed as
// z = f(x, y).
func PlaneGrid(point, normal Point3, xmin, xmax, ymin, ymax float64, nx, ny int) (*Grid, error) {
	if math.Abs(normal.Z) < 1e-10 {
		return nil, invalidParamf("the z-component of the normal vector cannot be zero")
	}
	d := -normal.Dot(point)
	return MeshGrid(xmin, xmax, ymin, ymax, nx, ny, func(x, y float64) float64 {
		return (-d - normal.X*x - normal.Y*y) / normal.Z
	})
}

// alignedBasis returns an orthonormal basis (e0, e1, e2) with e0 along
// the given axis.
func alignedBasis(axis Point3) (e0, e1, e2 Point3) {
	e0 = axis.Normalize()
	up := Pt3(0, 0, 1)
	if math.Abs(e0.Z) > 0.95 {
		up = Pt3(1, 0, 0)
	}
	e1 = e0.Cross(up).Normalize()
	e2 = e0.Cross(e1)
	return e0, e1, e2
}

// grid.go

package plotpy

// Grid holds a rectangular sampling of a surface as three matrices of
// identical shape. X, Y and Z are indexed as [row][col]; the point at
// (i, j) is (X[i][j], Y[i][j], Z[i][j]). A Grid is never mutated by
// this package after creation.
type Grid struct {
	X, Y, Z [][]float64
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.X)
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	if len(g.X) == 0 {
		return 0
	}
	return len(g.X[0])
}

// At returns the point at row i, column j.
func (g *Grid) At(i, j int) Point3 {
	return Point3{X: g.X[i][j], Y: g.Y[i][j], Z: g.Z[i][j]}
}

// Linspace returns n evenly spaced values over the closed interval
// [start, stop]. It returns nil for n = 0 and [start] for n = 1.
func Linspace(start, stop float64, n int) []float64 {
	if n == 0 {
		return nil
	}
	res := make([]float64, n)
	res[0] = start
	if n == 1 {
		return res
	}
	res[n-1] = stop
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		res[i] = start + float64(i)*step
	}
	return res
}

// MeshGrid2D generates two (ny by nx) matrices X and Y where X steps
// linearly from xmin to xmax along each row and Y steps linearly from
// ymin to ymax down each column. Both nx and ny must be at least 2.
func MeshGrid2D(xmin, xmax, ymin, ymax float64, nx, ny int) (x, y [][]float64, err error) {
	if nx < 2 || ny < 2 {
		return nil, nil, invalidParamf("meshgrid needs nx >= 2 and ny >= 2 (got %d, %d)", nx, ny)
	}
	x = make([][]float64, ny)
	y = make([][]float64, ny)
	dx := (xmax - xmin) / float64(nx-1)
	dy := (ymax - ymin) / float64(ny-1)
	for i := 0; i < ny; i++ {
		v := ymin + float64(i)*dy
		x[i] = make([]float64, nx)
		y[i] = make([]float64, nx)
		for j := 0; j < nx; j++ {
			x[i][j] = xmin + float64(j)*dx
			y[i][j] = v
		}
	}
	return x, y, nil
}

// MeshGrid samples the scalar function f over the rectangular domain
// [xmin, xmax] x [ymin, ymax] and returns the resulting (ny by nx)
// grid with Z[i][j] = f(X[i][j], Y[i][j]). Both nx and ny must be at
// least 2. The function f is called exactly nx*ny times; MeshGrid has
// no knowledge of what z represents.
func MeshGrid(xmin, xmax, ymin, ymax float64, nx, ny int, f func(x, y float64) float64) (*Grid, error) {
	x, y, err := MeshGrid2D(xmin, xmax, ymin, ymax, nx, ny)
	if err != nil {
		return nil, err
	}
	z := make([][]float64, ny)
	for i := 0; i < ny; i++ {
		z[i] = make([]float64, nx)
		for j := 0; j < nx; j++ {
			z[i][j] = f(x[i][j], y[i][j])
		}
	}
	return &Grid{X: x, Y: y, Z: z}, nil
}

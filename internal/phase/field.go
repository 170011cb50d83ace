package phase

import "math"

// Equations gives Hamilton's equations as a function of phase space:
// (dq/dt, dp/dt) = f(q, p, args...). Trailing args carry system
// constants (mass, stiffness, ...) and may be empty; they are always
// forwarded, so equations that take no constants simply ignore them.
type Equations func(q, p float64, args ...float64) (dq, dp float64)

// Field is the Hamiltonian vector field sampled at each grid point.
// DQ and DP always match the shape of the grid they were evaluated on,
// even for equations returning the same value everywhere.
type Field struct {
	DQ [][]float64
	DP [][]float64
}

// Evaluate samples eqs at every point of the grid. Failures in eqs are
// not intercepted: panics propagate, and non-finite derivatives land in
// the field as-is.
func Evaluate(eqs Equations, g Grid, args ...float64) Field {
	rows, cols := g.Shape()
	f := Field{
		DQ: make([][]float64, rows),
		DP: make([][]float64, rows),
	}
	for i := 0; i < rows; i++ {
		f.DQ[i] = make([]float64, cols)
		f.DP[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			f.DQ[i][j], f.DP[i][j] = eqs(g.Q[i][j], g.P[i][j], args...)
		}
	}
	return f
}

// Shape returns (rows, cols) of the sampled field.
func (f Field) Shape() (rows, cols int) {
	rows = len(f.DQ)
	if rows > 0 {
		cols = len(f.DQ[0])
	}
	return rows, cols
}

// Magnitude returns the elementwise Euclidean norm sqrt(dq^2 + dp^2).
func (f Field) Magnitude() [][]float64 {
	rows, cols := f.Shape()
	mag := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		mag[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			mag[i][j] = math.Hypot(f.DQ[i][j], f.DP[i][j])
		}
	}
	return mag
}

// MagnitudeRange returns the smallest and largest finite magnitude in
// the field. Non-finite entries are ignored; an all-non-finite field
// reports (0, 0).
func (f Field) MagnitudeRange() (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	rows, cols := f.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m := math.Hypot(f.DQ[i][j], f.DP[i][j])
			if math.IsNaN(m) || math.IsInf(m, 0) {
				continue
			}
			if m < min {
				min = m
			}
			if m > max {
				max = m
			}
		}
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, 0
	}
	return min, max
}

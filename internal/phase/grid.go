package phase

// Linspace returns n evenly spaced samples over the closed interval
// [lo, hi]. n <= 0 yields an empty slice; n == 1 yields just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Grid is a meshgrid of position and conjugate-momentum coordinates.
// Q and P always share the shape (len(ps), len(qs)): row i holds the
// i-th momentum sample repeated across all position samples.
type Grid struct {
	Q [][]float64
	P [][]float64
}

// Meshgrid builds the outer-product grid of position samples qs and
// momentum samples ps.
func Meshgrid(qs, ps []float64) Grid {
	g := Grid{
		Q: make([][]float64, len(ps)),
		P: make([][]float64, len(ps)),
	}
	for i, p := range ps {
		g.Q[i] = make([]float64, len(qs))
		g.P[i] = make([]float64, len(qs))
		copy(g.Q[i], qs)
		for j := range g.P[i] {
			g.P[i][j] = p
		}
	}
	return g
}

// Shape returns (rows, cols) = (momentum samples, position samples).
func (g Grid) Shape() (rows, cols int) {
	rows = len(g.Q)
	if rows > 0 {
		cols = len(g.Q[0])
	}
	return rows, cols
}

// QSamples returns the 1D position sample sequence the grid was built from.
func (g Grid) QSamples() []float64 {
	if len(g.Q) == 0 {
		return nil
	}
	return g.Q[0]
}

// PSamples returns the 1D momentum sample sequence the grid was built from.
func (g Grid) PSamples() []float64 {
	out := make([]float64, len(g.P))
	for i, row := range g.P {
		if len(row) > 0 {
			out[i] = row[0]
		}
	}
	return out
}

// QRange returns the position extent of the grid.
func (g Grid) QRange() (min, max float64) {
	return sampleRange(g.QSamples())
}

// PRange returns the momentum extent of the grid.
func (g Grid) PRange() (min, max float64) {
	return sampleRange(g.PSamples())
}

func sampleRange(xs []float64) (min, max float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

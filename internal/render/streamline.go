package render

import (
	"math"

	"github.com/san-kum/flowmate/internal/phase"
)

// Streamline is one traced trajectory: phase-space points plus the
// field magnitude sampled at each point.
type Streamline struct {
	Q   []float64
	P   []float64
	Mag []float64
}

// sampler interpolates a sampled vector field bilinearly. The grid is
// assumed uniform per axis, which Meshgrid over Linspace guarantees.
type sampler struct {
	field      phase.Field
	rows, cols int
	qMin, qStep float64
	pMin, pStep float64
	qMax, pMax  float64
}

func newSampler(g phase.Grid, f phase.Field) *sampler {
	rows, cols := g.Shape()
	qMin, qMax := g.QRange()
	pMin, pMax := g.PRange()
	s := &sampler{
		field: f,
		rows:  rows,
		cols:  cols,
		qMin:  qMin,
		qMax:  qMax,
		pMin:  pMin,
		pMax:  pMax,
	}
	if cols > 1 {
		s.qStep = (qMax - qMin) / float64(cols-1)
	}
	if rows > 1 {
		s.pStep = (pMax - pMin) / float64(rows-1)
	}
	return s
}

func (s *sampler) inDomain(q, p float64) bool {
	return q >= s.qMin && q <= s.qMax && p >= s.pMin && p <= s.pMax
}

// at returns the interpolated (dq, dp) at (q, p). ok is false outside
// the domain or where the surrounding samples are non-finite.
func (s *sampler) at(q, p float64) (dq, dp float64, ok bool) {
	if !s.inDomain(q, p) || s.qStep == 0 || s.pStep == 0 {
		return 0, 0, false
	}

	fc := (q - s.qMin) / s.qStep
	fr := (p - s.pMin) / s.pStep
	c0 := int(fc)
	r0 := int(fr)
	if c0 >= s.cols-1 {
		c0 = s.cols - 2
	}
	if r0 >= s.rows-1 {
		r0 = s.rows - 2
	}
	tc := fc - float64(c0)
	tr := fr - float64(r0)

	dq = bilerp(s.field.DQ[r0][c0], s.field.DQ[r0][c0+1], s.field.DQ[r0+1][c0], s.field.DQ[r0+1][c0+1], tc, tr)
	dp = bilerp(s.field.DP[r0][c0], s.field.DP[r0][c0+1], s.field.DP[r0+1][c0], s.field.DP[r0+1][c0+1], tc, tr)
	if !finite(dq) || !finite(dp) {
		return 0, 0, false
	}
	return dq, dp, true
}

func bilerp(v00, v01, v10, v11, tx, ty float64) float64 {
	top := v00 + tx*(v01-v00)
	bot := v10 + tx*(v11-v10)
	return top + ty*(bot-top)
}

// direction returns the unit tangent of the field at (q, p). Stagnation
// points (magnitude below eps) report ok=false so tracing stops there
// instead of dividing through zero.
func (s *sampler) direction(q, p float64) (uq, up float64, ok bool) {
	dq, dp, ok := s.at(q, p)
	if !ok {
		return 0, 0, false
	}
	mag := math.Hypot(dq, dp)
	if mag < 1e-12 {
		return 0, 0, false
	}
	return dq / mag, dp / mag, true
}

const (
	// Seed mask base resolution per axis, scaled by density.
	maskBase = 30

	// Step length as a fraction of the smaller mask cell extent.
	stepFrac = 0.3

	maxSteps  = 4096
	minPoints = 8
)

// Streamlines seeds trajectories from the free cells of a
// density-scaled occupancy mask and integrates each one forward and
// backward through the field. Lines are never broken: occupancy only
// gates seeding, so a trajectory may cross cells another line claimed.
func Streamlines(g phase.Grid, f phase.Field, density float64) []Streamline {
	s := newSampler(g, f)
	if s.rows < 2 || s.cols < 2 {
		return nil
	}

	n := int(float64(maskBase) * density)
	if n < 2 {
		n = 2
	}
	mask := make([]bool, n*n)
	cellQ := (s.qMax - s.qMin) / float64(n)
	cellP := (s.pMax - s.pMin) / float64(n)

	step := stepFrac * math.Min(cellQ, cellP)
	if step <= 0 || !finite(step) {
		return nil
	}

	claim := func(q, p float64) {
		ci := int((q - s.qMin) / cellQ)
		ri := int((p - s.pMin) / cellP)
		if ci >= 0 && ci < n && ri >= 0 && ri < n {
			mask[ri*n+ci] = true
		}
	}

	var lines []Streamline
	for ri := 0; ri < n; ri++ {
		for ci := 0; ci < n; ci++ {
			if mask[ri*n+ci] {
				continue
			}
			q0 := s.qMin + (float64(ci)+0.5)*cellQ
			p0 := s.pMin + (float64(ri)+0.5)*cellP

			fwd := integrate(s, q0, p0, step)
			bwd := integrate(s, q0, p0, -step)
			line := joinHalves(bwd, fwd)
			if len(line.Q) < minPoints {
				continue
			}
			for i := range line.Q {
				claim(line.Q[i], line.P[i])
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// integrate advances from (q, p) in fixed steps of arc length h using
// RK4 on the unit tangent field, recording magnitude along the way.
func integrate(s *sampler, q, p, h float64) Streamline {
	var out Streamline
	for step := 0; step < maxSteps; step++ {
		dq, dp, ok := s.at(q, p)
		if !ok {
			break
		}
		out.Q = append(out.Q, q)
		out.P = append(out.P, p)
		out.Mag = append(out.Mag, math.Hypot(dq, dp))

		k1q, k1p, ok := s.direction(q, p)
		if !ok {
			break
		}
		k2q, k2p, ok := s.direction(q+0.5*h*k1q, p+0.5*h*k1p)
		if !ok {
			break
		}
		k3q, k3p, ok := s.direction(q+0.5*h*k2q, p+0.5*h*k2p)
		if !ok {
			break
		}
		k4q, k4p, ok := s.direction(q+h*k3q, p+h*k3p)
		if !ok {
			break
		}

		q += h / 6.0 * (k1q + 2*k2q + 2*k3q + k4q)
		p += h / 6.0 * (k1p + 2*k2p + 2*k3p + k4p)
	}
	return out
}

// joinHalves reverses the backward half and splices the forward half
// onto it, dropping the duplicated seed point.
func joinHalves(bwd, fwd Streamline) Streamline {
	var out Streamline
	for i := len(bwd.Q) - 1; i > 0; i-- {
		out.Q = append(out.Q, bwd.Q[i])
		out.P = append(out.P, bwd.P[i])
		out.Mag = append(out.Mag, bwd.Mag[i])
	}
	out.Q = append(out.Q, fwd.Q...)
	out.P = append(out.P, fwd.P...)
	out.Mag = append(out.Mag, fwd.Mag...)
	return out
}

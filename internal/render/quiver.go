package render

import (
	"math"

	"github.com/san-kum/flowmate/internal/phase"
)

// drawQuiver overlays unit-normalized field vectors at every grid
// point, pivoted at their midpoint and colored by magnitude. A zero
// vector normalizes to NaN; those arrows are skipped rather than drawn
// or reported as errors.
func drawQuiver(c *Canvas, g phase.Grid, f phase.Field, cmap Colormap, magMin, magMax float64, width int) {
	rows, cols := g.Shape()
	if rows == 0 || cols == 0 {
		return
	}

	qs := g.QSamples()
	ps := g.PSamples()
	arrowPx := arrowLength(c, qs, ps)

	span := magMax - magMin
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dq := f.DQ[i][j]
			dp := f.DP[i][j]
			mag := math.Hypot(dq, dp)

			uq := dq / mag
			up := dp / mag
			// NaN/Inf from zero or non-finite magnitude falls out here.
			if !finite(uq) || !finite(up) {
				continue
			}

			t := 0.0
			if span > 0 {
				t = (mag - magMin) / span
			}
			c.DrawArrow(g.Q[i][j], g.P[i][j], uq, up, arrowPx, cmap.At(t), width)
		}
	}
}

// arrowLength sizes arrows to ~90% of the tighter grid spacing so
// neighboring arrows do not overlap.
func arrowLength(c *Canvas, qs, ps []float64) float64 {
	spacing := math.Inf(1)
	if len(qs) > 1 {
		x0, _ := c.Pixel(qs[0], ps[0])
		x1, _ := c.Pixel(qs[1], ps[0])
		spacing = math.Abs(x1 - x0)
	}
	if len(ps) > 1 {
		_, y0 := c.Pixel(qs[0], ps[0])
		_, y1 := c.Pixel(qs[0], ps[1])
		if d := math.Abs(y1 - y0); d < spacing {
			spacing = d
		}
	}
	if math.IsInf(spacing, 0) {
		return 8
	}
	return spacing * 0.9
}

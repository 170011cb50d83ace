package phase_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flowmate/internal/phase"
)

var _ = Describe("Linspace", func() {
	It("spans the closed interval with n samples", func() {
		xs := phase.Linspace(-5, 5, 21)
		Expect(xs).To(HaveLen(21))
		Expect(xs[0]).To(Equal(-5.0))
		Expect(xs[20]).To(Equal(5.0))
		Expect(xs[10]).To(BeNumerically("~", 0.0, 1e-12))
	})

	It("pins the endpoint exactly", func() {
		xs := phase.Linspace(0, 0.3, 4)
		Expect(xs[3]).To(Equal(0.3))
	})

	It("returns just lo for a single sample", func() {
		Expect(phase.Linspace(2, 9, 1)).To(Equal([]float64{2}))
	})

	It("is empty for non-positive counts", func() {
		Expect(phase.Linspace(0, 1, 0)).To(BeEmpty())
		Expect(phase.Linspace(0, 1, -3)).To(BeEmpty())
	})
})

var _ = Describe("Meshgrid", func() {
	It("shapes the grid as (momentum, position)", func() {
		g := phase.Meshgrid(phase.Linspace(-5, 5, 21), phase.Linspace(-5, 5, 31))
		rows, cols := g.Shape()
		Expect(rows).To(Equal(31))
		Expect(cols).To(Equal(21))
	})

	It("varies q along rows and p down columns", func() {
		g := phase.Meshgrid([]float64{1, 2, 3}, []float64{10, 20})
		Expect(g.Q[0]).To(Equal([]float64{1, 2, 3}))
		Expect(g.Q[1]).To(Equal([]float64{1, 2, 3}))
		Expect(g.P[0]).To(Equal([]float64{10, 10, 10}))
		Expect(g.P[1]).To(Equal([]float64{20, 20, 20}))
	})

	It("reports its sample sequences and extents", func() {
		g := phase.Meshgrid([]float64{-2, 0, 2}, []float64{-1, 1})
		Expect(g.QSamples()).To(Equal([]float64{-2, 0, 2}))
		Expect(g.PSamples()).To(Equal([]float64{-1, 1}))

		qMin, qMax := g.QRange()
		Expect(qMin).To(Equal(-2.0))
		Expect(qMax).To(Equal(2.0))
	})
})

var _ = Describe("Evaluate", func() {
	It("fills the full grid for constant equations", func() {
		constant := func(q, p float64, args ...float64) (float64, float64) {
			return 1.5, -0.25
		}
		g := phase.Meshgrid(phase.Linspace(0, 1, 5), phase.Linspace(0, 1, 7))
		f := phase.Evaluate(constant, g)

		rows, cols := f.Shape()
		Expect(rows).To(Equal(7))
		Expect(cols).To(Equal(5))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				Expect(f.DQ[i][j]).To(Equal(1.5))
				Expect(f.DP[i][j]).To(Equal(-0.25))
			}
		}
	})

	It("is the identity for coordinate-valued equations", func() {
		ident := func(q, p float64, args ...float64) (float64, float64) {
			return q, p
		}
		g := phase.Meshgrid(phase.Linspace(-1, 1, 4), phase.Linspace(-2, 2, 3))
		f := phase.Evaluate(ident, g)

		Expect(f.DQ).To(Equal(g.Q))
		Expect(f.DP).To(Equal(g.P))
	})

	It("evaluates a harmonic oscillator over the standard window", func() {
		eqs := func(q, p float64, args ...float64) (float64, float64) {
			m, k := args[0], args[1]
			return p / m, -k * q
		}
		g := phase.Meshgrid(phase.Linspace(-5, 5, 21), phase.Linspace(-5, 5, 31))
		f := phase.Evaluate(eqs, g, 2, 10)

		rows, cols := f.Shape()
		Expect(rows).To(Equal(31))
		Expect(cols).To(Equal(21))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				Expect(f.DQ[i][j]).To(BeNumerically("~", g.P[i][j]/2, 1e-12))
				Expect(f.DP[i][j]).To(BeNumerically("~", -10*g.Q[i][j], 1e-12))
			}
		}
	})

	It("forwards an empty argument list", func() {
		eqs := func(q, p float64, args ...float64) (float64, float64) {
			Expect(args).To(BeEmpty())
			return p, -q
		}
		g := phase.Meshgrid([]float64{0, 1}, []float64{0, 1})
		f := phase.Evaluate(eqs, g)
		Expect(f.DQ[1][0]).To(Equal(1.0))
		Expect(f.DP[0][1]).To(Equal(-1.0))
	})
})

var _ = Describe("Field", func() {
	It("computes the elementwise magnitude", func() {
		f := phase.Field{
			DQ: [][]float64{{3, 0}},
			DP: [][]float64{{4, 0}},
		}
		mag := f.Magnitude()
		Expect(mag[0][0]).To(Equal(5.0))
		Expect(mag[0][1]).To(Equal(0.0))
	})

	It("ranges over finite magnitudes only", func() {
		f := phase.Field{
			DQ: [][]float64{{1, math.NaN(), 0}},
			DP: [][]float64{{0, 1, 2}},
		}
		min, max := f.MagnitudeRange()
		Expect(min).To(Equal(1.0))
		Expect(max).To(Equal(2.0))
	})

	It("reports (0, 0) when nothing is finite", func() {
		f := phase.Field{
			DQ: [][]float64{{math.NaN()}},
			DP: [][]float64{{math.Inf(1)}},
		}
		min, max := f.MagnitudeRange()
		Expect(min).To(Equal(0.0))
		Expect(max).To(Equal(0.0))
	})
})

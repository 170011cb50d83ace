package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas is an RGBA raster with a data-space to pixel-space mapping.
// Momentum increases upward, so pixel rows are flipped relative to
// data rows.
type Canvas struct {
	img                    *image.RGBA
	w, h                   int
	qMin, qMax, pMin, pMax float64
}

func NewCanvas(w, h int, qMin, qMax, pMin, pMax float64, bg color.RGBA) *Canvas {
	c := &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		w:    w,
		h:    h,
		qMin: qMin,
		qMax: qMax,
		pMin: pMin,
		pMax: pMax,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.img.SetRGBA(x, y, bg)
		}
	}
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Pixel maps a phase-space point to fractional pixel coordinates.
func (c *Canvas) Pixel(q, p float64) (x, y float64) {
	x = (q - c.qMin) / (c.qMax - c.qMin) * float64(c.w-1)
	y = (c.pMax - p) / (c.pMax - c.pMin) * float64(c.h-1)
	return x, y
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// stamp draws a square brush of the given width centered on (x, y).
func (c *Canvas) stamp(x, y, width int, col color.RGBA) {
	if width <= 1 {
		c.set(x, y, col)
		return
	}
	half := width / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			c.set(x+dx, y+dy, col)
		}
	}
}

// DrawSegment draws a stroke between two phase-space points. Points
// with non-finite coordinates are ignored.
func (c *Canvas) DrawSegment(q0, p0, q1, p1 float64, col color.RGBA, width int) {
	if !finite(q0) || !finite(p0) || !finite(q1) || !finite(p1) {
		return
	}
	x0, y0 := c.Pixel(q0, p0)
	x1, y1 := c.Pixel(q1, p1)
	c.drawLinePx(x0, y0, x1, y1, col, width)
}

func (c *Canvas) drawLinePx(x0, y0, x1, y1 float64, col color.RGBA, width int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := math.Abs(dx)
	if ay := math.Abs(dy); ay > steps {
		steps = ay
	}
	n := int(steps)
	if n <= 0 {
		c.stamp(roundPx(x0), roundPx(y0), width, col)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.stamp(roundPx(x0+dx*t), roundPx(y0+dy*t), width, col)
	}
}

// DrawArrow draws an arrow centered on the phase-space point (q, p)
// pointing along the unit direction (uq, up), with total shaft length
// lengthPx in pixels. Non-finite directions are skipped, never drawn.
func (c *Canvas) DrawArrow(q, p, uq, up, lengthPx float64, col color.RGBA, width int) {
	if !finite(q) || !finite(p) || !finite(uq) || !finite(up) {
		return
	}
	cx, cy := c.Pixel(q, p)

	// Screen direction: +p points up, so the y component flips.
	dx := uq * lengthPx / 2
	dy := -up * lengthPx / 2

	tailX, tailY := cx-dx, cy-dy
	tipX, tipY := cx+dx, cy+dy
	c.drawLinePx(tailX, tailY, tipX, tipY, col, width)

	// Two head strokes swept back 150 degrees from the shaft.
	headLen := lengthPx * 0.35
	angle := math.Atan2(dy, dx)
	for _, da := range [2]float64{2.62, -2.62} {
		hx := tipX + headLen*math.Cos(angle+da)
		hy := tipY + headLen*math.Sin(angle+da)
		c.drawLinePx(tipX, tipY, hx, hy, col, width)
	}
}

func roundPx(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

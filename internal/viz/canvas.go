package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel canvas mapped to a phase-space window.
// Each character cell holds 2x4 sub-pixels and carries the color of
// the last stroke that touched it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string

	qMin, qMax, pMin, pMax float64
}

func NewCanvas(w, h int, qMin, qMax, pMin, pMax float64) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
		qMin:   qMin,
		qMax:   qMax,
		pMin:   pMin,
		pMax:   pMax,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// pixel maps a phase-space point to sub-pixel coordinates. The canvas
// is (Width*2) x (Height*4) sub-pixels, with p increasing upward.
func (c *Canvas) pixel(q, p float64) (x, y int) {
	fx := (q - c.qMin) / (c.qMax - c.qMin) * float64(c.Width*2-1)
	fy := (c.pMax - p) / (c.pMax - c.pMin) * float64(c.Height*4-1)
	return int(fx + 0.5), int(fy + 0.5)
}

// Set lights the sub-pixel at (x, y) and tags its cell with color.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = color
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Colors[i][j] = ""
		}
	}
}

// Line draws a line between two phase-space points using Bresenham's
// algorithm over sub-pixels. Non-finite endpoints are skipped.
func (c *Canvas) Line(q0, p0, q1, p1 float64, color string) {
	if !finite(q0) || !finite(p0) || !finite(q1) || !finite(p1) {
		return
	}
	x0, y0 := c.pixel(q0, p0)
	x1, y1 := c.pixel(q1, p1)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		col := 0
		for col < c.Width {
			color := c.Colors[row][col]
			run := col
			for run < c.Width && c.Colors[row][run] == color {
				run++
			}
			segment := string(c.Grid[row][col:run])
			if color == "" {
				b.WriteString(segment)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(segment))
			}
			col = run
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

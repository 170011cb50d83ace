package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/san-kum/flowmate/internal/phase"
)

// Options controls portrait rendering. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// VecField overlays a quiver plot of unit vectors colored by
	// magnitude underneath the streamlines.
	VecField bool

	// Density scales the streamline seeding resolution.
	Density float64

	// Cmap names the colormap for streamlines and quiver ("inferno_r",
	// "viridis", ...).
	Cmap string

	// DPI sets the output resolution: the figure is a fixed size in
	// inches, so dpi determines the pixel dimensions.
	DPI float64

	// DarkMode renders on a black background instead of white.
	DarkMode bool

	// Output is the PNG path used by Save.
	Output string
}

func DefaultOptions() Options {
	return Options{
		VecField: false,
		Density:  3.0,
		Cmap:     "inferno_r",
		DPI:      300.0,
		DarkMode: true,
		Output:   "phase_portrait.png",
	}
}

// Figure extent in inches; pixel size is figure * dpi. Height follows
// the grid aspect ratio so data units stay square (equal aspect).
const figureWidthInches = 6.4

var (
	darkBackground  = color.RGBA{A: 0xFF}
	lightBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Render evaluates the field over the grid and draws the phase
// portrait: streamlines colored by flow magnitude, plus the optional
// quiver overlay. Failures raised by eqs itself propagate unmodified.
func Render(eqs phase.Equations, g phase.Grid, args []float64, opts Options) (*image.RGBA, error) {
	rows, cols := g.Shape()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Density <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadDensity, opts.Density)
	}
	if opts.DPI <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadDPI, opts.DPI)
	}

	qMin, qMax := g.QRange()
	pMin, pMax := g.PRange()
	if qMax <= qMin || pMax <= pMin {
		return nil, ErrDegenerateGrid
	}

	w := int(math.Round(figureWidthInches * opts.DPI))
	h := int(math.Round(float64(w) * (pMax - pMin) / (qMax - qMin)))
	if h < 1 {
		h = 1
	}

	bg := lightBackground
	if opts.DarkMode {
		bg = darkBackground
	}
	canvas := NewCanvas(w, h, qMin, qMax, pMin, pMax, bg)

	field := phase.Evaluate(eqs, g, args...)
	magMin, magMax := field.MagnitudeRange()
	cmap := ColormapByName(opts.Cmap)
	lw := strokeWidth(opts.DPI)

	if opts.VecField {
		drawQuiver(canvas, g, field, cmap, magMin, magMax, lw)
	}

	span := magMax - magMin
	for _, line := range Streamlines(g, field, opts.Density) {
		for i := 1; i < len(line.Q); i++ {
			t := 0.0
			if span > 0 {
				t = (line.Mag[i] - magMin) / span
			}
			canvas.DrawSegment(line.Q[i-1], line.P[i-1], line.Q[i], line.P[i], cmap.At(t), lw)
		}
	}

	return canvas.Image(), nil
}

// strokeWidth keeps streamline strokes thin at any resolution: one
// pixel at screen dpi, scaling up for print-resolution output.
func strokeWidth(dpi float64) int {
	w := int(math.Round(dpi / 150.0))
	if w < 1 {
		w = 1
	}
	return w
}

// Save writes the image as PNG, overwriting any existing file.
func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

package render

import (
	"image/color"
	"math"
	"strings"
)

// Colormap maps a normalized value in [0, 1] to a color by linear
// interpolation between evenly spaced anchor colors. Names ending in
// "_r" select the reversed map, matching the matplotlib convention.
type Colormap struct {
	name     string
	anchors  [][3]float64
	reversed bool
}

// Evenly spaced anchors at t = 0, 1/8, ..., 1.
var colormaps = map[string][][3]float64{
	"inferno": {
		{0.001, 0.000, 0.014},
		{0.078, 0.042, 0.206},
		{0.229, 0.037, 0.388},
		{0.390, 0.100, 0.431},
		{0.558, 0.166, 0.398},
		{0.720, 0.215, 0.330},
		{0.866, 0.316, 0.226},
		{0.979, 0.622, 0.155},
		{0.988, 0.998, 0.645},
	},
	"magma": {
		{0.001, 0.000, 0.014},
		{0.074, 0.052, 0.221},
		{0.232, 0.059, 0.437},
		{0.390, 0.100, 0.502},
		{0.550, 0.161, 0.506},
		{0.716, 0.215, 0.475},
		{0.869, 0.288, 0.409},
		{0.995, 0.624, 0.427},
		{0.987, 0.991, 0.750},
	},
	"plasma": {
		{0.050, 0.030, 0.528},
		{0.255, 0.014, 0.615},
		{0.417, 0.001, 0.658},
		{0.562, 0.052, 0.641},
		{0.694, 0.165, 0.564},
		{0.798, 0.280, 0.470},
		{0.881, 0.393, 0.383},
		{0.988, 0.652, 0.211},
		{0.940, 0.975, 0.131},
	},
	"viridis": {
		{0.267, 0.005, 0.329},
		{0.283, 0.141, 0.458},
		{0.254, 0.265, 0.530},
		{0.207, 0.372, 0.553},
		{0.164, 0.471, 0.558},
		{0.128, 0.567, 0.551},
		{0.135, 0.659, 0.518},
		{0.478, 0.821, 0.318},
		{0.993, 0.906, 0.144},
	},
}

// ColormapByName resolves a colormap name, honoring the "_r" reversal
// suffix. Unknown names fall back to inferno_r, the rendering default.
func ColormapByName(name string) Colormap {
	base := name
	reversed := false
	if strings.HasSuffix(base, "_r") {
		base = strings.TrimSuffix(base, "_r")
		reversed = true
	}
	anchors, ok := colormaps[base]
	if !ok {
		return Colormap{name: "inferno_r", anchors: colormaps["inferno"], reversed: true}
	}
	return Colormap{name: name, anchors: anchors, reversed: reversed}
}

// ColormapNames lists the recognized base colormap names.
func ColormapNames() []string {
	return []string{"inferno", "magma", "plasma", "viridis"}
}

func (c Colormap) Name() string { return c.name }

// At returns the color for normalized value t. Values outside [0, 1]
// clamp to the endpoints; NaN maps to the low endpoint.
func (c Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if c.reversed {
		t = 1 - t
	}

	n := len(c.anchors)
	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		i = n - 2
	}
	frac := pos - float64(i)

	lo := c.anchors[i]
	hi := c.anchors[i+1]
	return color.RGBA{
		R: channel(lo[0] + frac*(hi[0]-lo[0])),
		G: channel(lo[1] + frac*(hi[1]-lo[1])),
		B: channel(lo[2] + frac*(hi[2]-lo[2])),
		A: 0xFF,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

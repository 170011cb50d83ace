package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/flowmate/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00cccc"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00aaaa"))
)

// magnitudeColor maps a normalized magnitude through the named colormap
// to a truecolor terminal color.
func magnitudeColor(cmap render.Colormap, t float64) string {
	c := cmap.At(t)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

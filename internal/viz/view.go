package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/flowmate/internal/phase"
	"github.com/san-kum/flowmate/internal/render"
)

// Model is an interactive phase portrait viewer. Streamlines are
// retraced whenever the viewport changes.
type Model struct {
	name string
	eqs  phase.Equations
	args []float64

	qMin, qMax, pMin, pMax float64
	home                   [4]float64

	showQuiver bool
	density    float64
	cmap       render.Colormap

	width, height int
}

func NewModel(name string, eqs phase.Equations, args []float64, qMin, qMax, pMin, pMax float64, cmapName string) Model {
	return Model{
		name:    name,
		eqs:     eqs,
		args:    args,
		qMin:    qMin,
		qMax:    qMax,
		pMin:    pMin,
		pMax:    pMax,
		home:    [4]float64{qMin, qMax, pMin, pMax},
		density: 1.0,
		cmap:    render.ColormapByName(cmapName),
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		qPan := (m.qMax - m.qMin) * 0.1
		pPan := (m.pMax - m.pMin) * 0.1
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.qMin -= qPan
			m.qMax -= qPan
		case "right", "l":
			m.qMin += qPan
			m.qMax += qPan
		case "up", "k":
			m.pMin += pPan
			m.pMax += pPan
		case "down", "j":
			m.pMin -= pPan
			m.pMax -= pPan
		case "+", "=":
			m.zoom(0.8)
		case "-", "_":
			m.zoom(1.25)
		case "v":
			m.showQuiver = !m.showQuiver
		case "r":
			m.qMin, m.qMax, m.pMin, m.pMax = m.home[0], m.home[1], m.home[2], m.home[3]
		}
	}
	return m, nil
}

func (m *Model) zoom(factor float64) {
	qc := (m.qMin + m.qMax) / 2
	pc := (m.pMin + m.pMax) / 2
	qHalf := (m.qMax - m.qMin) / 2 * factor
	pHalf := (m.pMax - m.pMin) / 2 * factor
	m.qMin, m.qMax = qc-qHalf, qc+qHalf
	m.pMin, m.pMax = pc-pHalf, pc+pHalf
}

func (m Model) View() string {
	w := m.width
	if w < 20 {
		w = 20
	}
	h := m.height - 4
	if h < 8 {
		h = 8
	}

	// Sample the viewport densely enough for smooth interpolation.
	g := phase.Meshgrid(
		phase.Linspace(m.qMin, m.qMax, 41),
		phase.Linspace(m.pMin, m.pMax, 41),
	)
	f := phase.Evaluate(m.eqs, g, m.args...)
	magMin, magMax := f.MagnitudeRange()
	span := magMax - magMin

	c := NewCanvas(w, h, m.qMin, m.qMax, m.pMin, m.pMax)

	if m.showQuiver {
		m.drawQuiver(c, g, f, magMin, span)
	}
	for _, line := range render.Streamlines(g, f, m.density) {
		for i := 1; i < len(line.Q); i++ {
			t := 0.0
			if span > 0 {
				t = (line.Mag[i] - magMin) / span
			}
			c.Line(line.Q[i-1], line.P[i-1], line.Q[i], line.P[i], magnitudeColor(m.cmap, t))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.name)))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  q: [%.2f, %.2f]  p: [%.2f, %.2f]", m.qMin, m.qMax, m.pMin, m.pMax)))
	if m.showQuiver {
		b.WriteString("  " + valueStyle.Render("quiver"))
	}
	b.WriteString("\n")
	b.WriteString(c.String())
	b.WriteString(keyStyle.Render("h/j/k/l") + subtleStyle.Render(" pan  ") +
		keyStyle.Render("+/-") + subtleStyle.Render(" zoom  ") +
		keyStyle.Render("v") + subtleStyle.Render(" quiver  ") +
		keyStyle.Render("r") + subtleStyle.Render(" reset  ") +
		keyStyle.Render("q") + subtleStyle.Render(" quit"))
	return b.String()
}

// drawQuiver draws short unit-direction strokes at a coarse subsample
// of the grid. Zero vectors normalize to NaN and are skipped.
func (m Model) drawQuiver(c *Canvas, g phase.Grid, f phase.Field, magMin, span float64) {
	rows, cols := g.Shape()
	stride := 4
	qLen := (m.qMax - m.qMin) / float64(c.Width) * 1.5
	pLen := (m.pMax - m.pMin) / float64(c.Height) * 1.5
	for i := 0; i < rows; i += stride {
		for j := 0; j < cols; j += stride {
			dq, dp := f.DQ[i][j], f.DP[i][j]
			mag := math.Hypot(dq, dp)
			uq, up := dq/mag, dp/mag
			if !finite(uq) || !finite(up) {
				continue
			}
			t := 0.0
			if span > 0 {
				t = (mag - magMin) / span
			}
			q0, p0 := g.Q[i][j], g.P[i][j]
			c.Line(q0-uq*qLen/2, p0-up*pLen/2, q0+uq*qLen/2, p0+up*pLen/2, magnitudeColor(m.cmap, t))
		}
	}
}

// Run blocks until the viewer exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

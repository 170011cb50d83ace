package viz

import (
	"math"
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4, 0, 1, 0, 1)
	c.Set(0, 0, "")

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot set in first cell")
	}
	if c.Grid[0][1] != 0x2800 {
		t.Error("neighbor cell should stay empty")
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4, 0, 1, 0, 1)
	c.Set(-1, 0, "")
	c.Set(0, -1, "")
	c.Set(100, 100, "")

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("out-of-bounds set should be ignored")
			}
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10, 0, 1, 0, 1)
	c.Line(0, 0, 1, 1, "#ffffff")

	set := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				set++
			}
		}
	}
	if set == 0 {
		t.Fatal("expected line to light cells")
	}

	// p increases upward: (0, 0) lands in the bottom row.
	if c.Grid[9][0] == 0x2800 {
		t.Error("line start should land bottom-left")
	}
	if c.Grid[0][9] == 0x2800 {
		t.Error("line end should land top-right")
	}
}

func TestCanvasLineNonFinite(t *testing.T) {
	c := NewCanvas(10, 10, 0, 1, 0, 1)
	c.Line(math.NaN(), 0, 1, 1, "")
	c.Line(0, 0, math.Inf(-1), 1, "")

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("non-finite line should draw nothing")
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4, 0, 1, 0, 1)
	c.Line(0, 0, 1, 1, "#ff0000")
	c.Clear()

	for i, row := range c.Grid {
		for j, cell := range row {
			if cell != 0x2800 {
				t.Fatal("clear should empty every cell")
			}
			if c.Colors[i][j] != "" {
				t.Fatal("clear should drop colors")
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(4, 3, 0, 1, 0, 1)
	s := c.String()

	if strings.Count(s, "\n") != 3 {
		t.Errorf("expected 3 rows, got %q", s)
	}
}

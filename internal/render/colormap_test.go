package render

import (
	"math"
	"testing"
)

func TestColormapByName(t *testing.T) {
	tests := []struct {
		name     string
		resolved string
	}{
		{"inferno", "inferno"},
		{"inferno_r", "inferno_r"},
		{"viridis", "viridis"},
		{"magma_r", "magma_r"},
		{"nope", "inferno_r"},
		{"", "inferno_r"},
	}

	for _, tt := range tests {
		cm := ColormapByName(tt.name)
		if cm.Name() != tt.resolved {
			t.Errorf("ColormapByName(%q) = %s, want %s", tt.name, cm.Name(), tt.resolved)
		}
	}
}

func TestColormapReversal(t *testing.T) {
	fwd := ColormapByName("inferno")
	rev := ColormapByName("inferno_r")

	if fwd.At(0) != rev.At(1) {
		t.Error("reversed map should swap the endpoints")
	}
	if fwd.At(1) != rev.At(0) {
		t.Error("reversed map should swap the endpoints")
	}
	if fwd.At(0.5) != rev.At(0.5) {
		t.Error("midpoint should be reversal-invariant")
	}
}

func TestColormapClamps(t *testing.T) {
	cm := ColormapByName("viridis")

	if cm.At(-3) != cm.At(0) {
		t.Error("values below 0 should clamp to the low endpoint")
	}
	if cm.At(7) != cm.At(1) {
		t.Error("values above 1 should clamp to the high endpoint")
	}
	if cm.At(math.NaN()) != cm.At(0) {
		t.Error("NaN should map to the low endpoint")
	}
}

func TestColormapEndpoints(t *testing.T) {
	// inferno runs dark to bright; the forward endpoints should too.
	cm := ColormapByName("inferno")
	lo := cm.At(0)
	hi := cm.At(1)
	if int(lo.R)+int(lo.G)+int(lo.B) >= int(hi.R)+int(hi.G)+int(hi.B) {
		t.Errorf("expected increasing brightness, got %v -> %v", lo, hi)
	}
	if lo.A != 0xFF || hi.A != 0xFF {
		t.Error("colors should be opaque")
	}
}

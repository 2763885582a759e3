package util

import (
	"testing"

	"github.com/fogleman/ease"
)

func TestGenerateLutIsSymmetric(t *testing.T) {
	lut := GenerateLut(10, ease.InOutQuad)
	if len(lut) != 10 {
		t.Fatalf("len = %d, want 10", len(lut))
	}
	for i, j := 0, len(lut)-1; i < j; i, j = i+1, j-1 {
		if lut[i] != lut[j] {
			t.Errorf("lut[%d]=%v, lut[%d]=%v", i, lut[i], j, lut[j])
		}
	}
	if lut[0] != 0 {
		t.Errorf("lut[0] = %v, want 0", lut[0])
	}
	for i := 1; i < 5; i++ {
		if lut[i] <= lut[i-1] {
			t.Errorf("lut not rising at %d: %v", i, lut)
		}
	}
}

func TestGenerateLutShort(t *testing.T) {
	if lut := GenerateLut(1, ease.Linear); len(lut) != 1 || lut[0] != 0 {
		t.Errorf("GenerateLut(1) = %v", lut)
	}
	if lut := GenerateLut(0, ease.Linear); len(lut) != 0 {
		t.Errorf("GenerateLut(0) = %v", lut)
	}
}

func TestFalloffDecays(t *testing.T) {
	f := Falloff(4, ease.Linear)
	if len(f) != 4 {
		t.Fatalf("len = %d, want 4", len(f))
	}
	for i := 1; i < len(f); i++ {
		if f[i] >= f[i-1] {
			t.Fatalf("falloff not decaying: %v", f)
		}
	}
	if f[0] >= 1 || f[len(f)-1] <= 0 {
		t.Errorf("falloff should stay inside (0, 1): %v", f)
	}
	if Falloff(0, ease.Linear) != nil {
		t.Error("Falloff(0) should be nil")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

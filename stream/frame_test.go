package stream

import (
	"bytes"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(3)
	f.pixels[0] = colorful.Color{R: 1, G: 0, B: 0}
	f.pixels[1] = colorful.Color{R: 0, G: 1, B: 0}
	f.pixels[2] = colorful.Color{R: 2, G: -1, B: 1}

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	want := []byte{3, 0, 255, 0, 0, 0, 255, 0, 255, 0, 255}
	if !bytes.Equal(data, want) {
		t.Errorf("MarshalBinary = %v, want %v", data, want)
	}
}

func TestFrameTooLarge(t *testing.T) {
	if _, err := NewFrame(70000).MarshalBinary(); err == nil {
		t.Error("expected error for a frame larger than uint16")
	}
}

func TestGradientGetColor(t *testing.T) {
	g := GradientTable{{0, 0}, {100, 0.5}, {200, 1}}

	if got, want := g.GetColor(0.25, 1, 0.5), colorful.Hcl(50, 1, 0.5); got != want {
		t.Errorf("GetColor(0.25) = %v, want %v", got, want)
	}
	if got, want := g.GetColor(1.5, 1, 0.5), colorful.Hcl(200, 1, 0.5); got != want {
		t.Errorf("GetColor past the end = %v, want %v", got, want)
	}
	if got, want := g.GetColor(-1, 1, 0.5), colorful.Hcl(0, 1, 0.5); got != want {
		t.Errorf("GetColor before the start = %v, want %v", got, want)
	}
	if got, want := (GradientTable{}).GetColor(0.3, 1, 0.2), colorful.Hcl(0, 0, 0.2); got != want {
		t.Errorf("empty GetColor = %v, want %v", got, want)
	}
}

package stream

import (
	"math"
)

// A GradientTrail is a Renderer that slides a repeating gradient along the
// strip by one trail length as the value moves between the endpoints.
type GradientTrail struct {
	gradient    GradientTable
	numPixels   int
	trailLength int
	min, max    float64
	saturation  float64
	luminance   float64
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(numPixels int, gradient GradientTable, trailLength int, min, max float64) *GradientTrail {
	g := new(GradientTrail)
	g.numPixels = numPixels
	g.gradient = gradient
	g.trailLength = trailLength
	if g.trailLength < 1 {
		g.trailLength = 1
	}
	g.min = min
	g.max = max
	g.saturation = 1.0
	g.luminance = 0.05
	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(value float64) *Frame {
	f := NewFrame(g.numPixels)
	current := fraction(value, g.min, g.max) * float64(g.trailLength)
	trail := float64(g.trailLength)
	for i := 0; i < g.numPixels; i++ {
		t := math.Mod(float64(i)-current, trail)
		if t < 0 {
			t += trail
		}
		f.pixels[i] = g.gradient.GetColor(t/trail, g.saturation, g.luminance)
	}

	return f
}

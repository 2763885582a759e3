package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop is one hue key point of a GradientTable.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Hcl(0, 0, l)
	}

	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return colorful.Hcl(c1.Hue, s, l)
			}
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	if t < g[0].Pos {
		return colorful.Hcl(g[0].Hue, s, l)
	}
	// Past the last key point.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// DefaultGradient runs pink through red, orange, yellow, green, turquoise,
// blue and violet back to pink.
func DefaultGradient() GradientTable {
	return GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquiose
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}
}

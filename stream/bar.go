package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/util"
)

// A Bar is a Renderer that fills the strip in proportion to the value.
type Bar struct {
	gradient   GradientTable
	backColour colorful.Color
	numPixels  int
	min, max   float64
	saturation float64
	luminance  float64
	glow       []float64
}

// NewBar creates a Bar that is empty at min and full at max.
func NewBar(numPixels int, min, max float64, gradient GradientTable, backColour colorful.Color) *Bar {
	b := new(Bar)
	b.numPixels = numPixels
	b.min = min
	b.max = max
	b.gradient = gradient
	b.backColour = backColour
	b.saturation = 1.0
	b.luminance = 0.05
	return b
}

// NewBarFromConfig creates the Bar described by the strip and transition
// sections of c.
func NewBarFromConfig(c Config) (*Bar, error) {
	backColour, err := colorful.Hex(c.Strip.Background)
	if err != nil {
		return nil, err
	}
	b := NewBar(c.Strip.Pixels, c.Transition.From, c.Transition.To, c.Strip.Gradient, backColour)
	b.saturation = c.Strip.Saturation
	b.luminance = c.Strip.Luminance
	b.SetGlow(c.Strip.Glow)
	return b, nil
}

// SetGlow softens the n pixels just past the edge of the bar.
func (b *Bar) SetGlow(n int) {
	b.glow = util.Falloff(n, ease.InOutQuad)
}

// Fraction returns how much of the bar value fills, in [0, 1].
func (b *Bar) Fraction(value float64) float64 {
	return fraction(value, b.min, b.max)
}

func (b *Bar) colourAt(i int) colorful.Color {
	pos := 0.0
	if b.numPixels > 1 {
		pos = float64(i) / float64(b.numPixels-1)
	}
	return b.gradient.GetColor(pos, b.saturation, b.luminance)
}

// CalculateFrame creates a new Frame instance.
func (b *Bar) CalculateFrame(value float64) *Frame {
	f := NewFrame(b.numPixels)
	lit := b.Fraction(value) * float64(b.numPixels)
	edge := int(math.Ceil(lit))

	for i := 0; i < b.numPixels; i++ {
		switch {
		case float64(i+1) <= lit:
			f.pixels[i] = b.colourAt(i)
		case float64(i) < lit:
			// Partially covered edge pixel
			f.pixels[i] = b.backColour.BlendHcl(b.colourAt(i), lit-float64(i)).Clamped()
		case lit > 0 && i-edge < len(b.glow):
			f.pixels[i] = b.backColour.BlendHcl(b.colourAt(i), b.glow[i-edge]*0.5).Clamped()
		default:
			f.pixels[i] = b.backColour
		}
	}

	return f
}

package stream

import (
	"fmt"

	"github.com/matt-g-everett/tweentx/util"
)

// A Renderer turns the animated value into a frame of pixels.
type Renderer interface {
	CalculateFrame(value float64) *Frame
}

// NewRenderer creates the renderer named by strip.renderer.
func NewRenderer(c Config) (Renderer, error) {
	switch c.Strip.Renderer {
	case "bar", "":
		b, err := NewBarFromConfig(c)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "trail":
		g := NewGradientTrail(c.Strip.Pixels, c.Strip.Gradient, c.Strip.TrailLength, c.Transition.From, c.Transition.To)
		g.saturation = c.Strip.Saturation
		g.luminance = c.Strip.Luminance
		return g, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", c.Strip.Renderer)
	}
}

// fraction returns how far value has moved from min towards max, clamped
// to [0, 1].
func fraction(value, min, max float64) float64 {
	if max == min {
		if value >= max {
			return 1
		}
		return 0
	}
	return util.Clamp((value-min)/(max-min), 0, 1)
}

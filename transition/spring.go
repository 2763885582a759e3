package transition

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Settling factors (angular frequency × duration) per easing. A critically
// damped spring from rest is within 0.3% of its target after a factor of 8.
var springStiffness = [...]float64{
	EaseIn:    8,
	EaseOut:   12,
	EaseInOut: 10,
}

type springStepper struct {
	spring   harmonica.Spring
	pos, vel float64
	target   float64
	duration time.Duration
}

func newSpringStepper(e Easing, tick, duration time.Duration, origin, target float64) *springStepper {
	stiffness := springStiffness[EaseInOut]
	if e >= EaseIn && e <= EaseInOut {
		stiffness = springStiffness[e]
	}
	return &springStepper{
		spring:   harmonica.NewSpring(tick.Seconds(), stiffness/duration.Seconds(), 1.0),
		pos:      origin,
		target:   target,
		duration: duration,
	}
}

// step advances the spring by one tick. The last frame lands on the target.
func (s *springStepper) step(elapsed time.Duration) float64 {
	if elapsed >= s.duration {
		s.pos, s.vel = s.target, 0
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

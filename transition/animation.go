package transition

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies how an animation moves between the endpoints.
type Kind int

const (
	// KindLinear tweens in a single pass using quadratic easing.
	KindLinear Kind = iota
	// KindBounce is declared but does not interpolate. A bounce run ticks
	// for its duration and can be superseded, but never publishes a value.
	KindBounce
	// KindCubic tweens in a single pass using cubic easing.
	KindCubic
	// KindSine tweens in a single pass using sinusoidal easing.
	KindSine
	// KindSpring drives the value with a critically damped spring.
	KindSpring
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindBounce:
		return "bounce"
	case KindCubic:
		return "cubic"
	case KindSine:
		return "sine"
	case KindSpring:
		return "spring"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return KindLinear, nil
	case "bounce":
		return KindBounce, nil
	case "cubic":
		return KindCubic, nil
	case "sine":
		return KindSine, nil
	case "spring":
		return KindSpring, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAnimation, s)
	}
}

// Animation describes a single playback between the endpoints.
type Animation struct {
	Kind     Kind
	Easing   Easing
	Duration time.Duration
}

// Linear returns a single pass animation with quadratic easing.
func Linear(e Easing, d time.Duration) Animation {
	return Animation{Kind: KindLinear, Easing: e, Duration: d}
}

// Bounce returns a bounce animation. See KindBounce.
func Bounce(e Easing, d time.Duration) Animation {
	return Animation{Kind: KindBounce, Easing: e, Duration: d}
}

// Cubic returns a single pass animation with cubic easing.
func Cubic(e Easing, d time.Duration) Animation {
	return Animation{Kind: KindCubic, Easing: e, Duration: d}
}

// Sine returns a single pass animation with sinusoidal easing.
func Sine(e Easing, d time.Duration) Animation {
	return Animation{Kind: KindSine, Easing: e, Duration: d}
}

// Spring returns an animation driven by a critically damped spring that
// settles on the target by the end of d.
func Spring(e Easing, d time.Duration) Animation {
	return Animation{Kind: KindSpring, Easing: e, Duration: d}
}

// ParseAnimation builds an Animation from its textual parts.
func ParseAnimation(kind, easing string, d time.Duration) (Animation, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Animation{}, err
	}
	e, err := ParseEasing(easing)
	if err != nil {
		return Animation{}, err
	}
	return Animation{Kind: k, Easing: e, Duration: d}, nil
}

func (a Animation) String() string {
	return fmt.Sprintf("%s(%s, %s)", a.Kind, a.Easing, a.Duration)
}

// Validate checks that the animation can be played through the strict
// submission calls.
func (a Animation) Validate() error {
	if a.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, a.Duration)
	}
	switch a.Kind {
	case KindLinear, KindCubic, KindSine, KindSpring:
	case KindBounce:
		return fmt.Errorf("%w: %s is not implemented", ErrUnsupportedAnimation, a.Kind)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAnimation, a.Kind)
	}
	if a.Easing < EaseIn || a.Easing > EaseInOut {
		return fmt.Errorf("%w: %s", ErrUnsupportedAnimation, a.Easing)
	}
	return nil
}

// Direction selects which endpoint a run starts from.
type Direction int

const (
	// Forward runs from the start value to the end value.
	Forward Direction = iota
	// Backward runs from the end value to the start value.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection converts "forward" or "backward" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "forwards":
		return Forward, nil
	case "backward", "backwards":
		return Backward, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

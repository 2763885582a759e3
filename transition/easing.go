package transition

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Easing selects the shape of the curve used to tween between endpoints.
type Easing int

const (
	// EaseIn starts slowly and accelerates.
	EaseIn Easing = iota
	// EaseOut starts quickly and decelerates.
	EaseOut
	// EaseInOut is slow at both ends and fastest in the middle.
	EaseInOut
)

func (e Easing) String() string {
	switch e {
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return fmt.Sprintf("Easing(%d)", int(e))
	}
}

// ParseEasing converts names like "ease-in-out", "easeInOut" or "in-out" into
// an Easing.
func ParseEasing(s string) (Easing, error) {
	name := strings.ToLower(s)
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	name = strings.TrimPrefix(name, "ease")
	switch name {
	case "in":
		return EaseIn, nil
	case "out":
		return EaseOut, nil
	case "inout", "":
		return EaseInOut, nil
	default:
		return 0, fmt.Errorf("unknown easing %q", s)
	}
}

// A Curve maps normalised time in [0, 1] onto normalised progress.
type Curve func(t float64) float64

var curves = map[Kind][3]Curve{
	KindLinear: {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	KindCubic:  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	KindSine:   {ease.InSine, ease.OutSine, ease.InOutSine},
}

// CurveFor returns the easing curve for a tweened animation kind. Kinds that
// are not tweened (Bounce, Spring) have no curve.
func CurveFor(k Kind, e Easing) (Curve, bool) {
	set, ok := curves[k]
	if !ok || e < EaseIn || e > EaseInOut {
		return nil, false
	}
	return set[e], true
}

// Tween computes the eased value elapsed units into a duration long tween
// from start covering delta. Elapsed time outside [0, duration] is clamped.
func Tween(curve Curve, elapsed, start, delta, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return start + delta
	}
	if elapsed <= 0 {
		return start
	}
	return start + delta*curve(elapsed/duration)
}

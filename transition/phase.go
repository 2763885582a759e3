package transition

type phaseKind int

const (
	phaseFrom phaseKind = iota
	phaseTo
)

// A Phase declares one endpoint of a transition.
type Phase struct {
	kind  phaseKind
	value float64
}

// From declares the value a transition starts at.
func From(v float64) Phase {
	return Phase{kind: phaseFrom, value: v}
}

// To declares the value a transition ends at.
func To(v float64) Phase {
	return Phase{kind: phaseTo, value: v}
}

// Value returns the declared endpoint value.
func (p Phase) Value() float64 {
	return p.value
}

// IsFrom reports whether p was created with From.
func (p Phase) IsFrom() bool {
	return p.kind == phaseFrom
}

// endpoints derives the start and end values from the phase declarations.
// The first declaration of each kind wins and a missing one defaults to 0.
func endpoints(phases []Phase) (start, end float64) {
	var haveStart, haveEnd bool
	for _, p := range phases {
		switch p.kind {
		case phaseFrom:
			if !haveStart {
				start, haveStart = p.value, true
			}
		case phaseTo:
			if !haveEnd {
				end, haveEnd = p.value, true
			}
		}
	}
	return start, end
}

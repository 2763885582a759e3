package transition

import "errors"

var (
	// ErrInvalidDuration is returned for animations with a non-positive duration.
	ErrInvalidDuration = errors.New("invalid animation duration")
	// ErrSchedulerUnavailable is returned once the scheduler has stopped.
	ErrSchedulerUnavailable = errors.New("transition scheduler unavailable")
	// ErrUnsupportedAnimation is returned for animation kinds that cannot be played.
	ErrUnsupportedAnimation = errors.New("unsupported animation kind")
)

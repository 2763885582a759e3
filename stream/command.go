package stream

import (
	"encoding/json"
	"fmt"

	"github.com/matt-g-everett/tweentx/transition"
)

// Command asks for the transition to play in a direction. A missing
// animation falls back to the configured default.
type Command struct {
	Direction string         `json:"direction"`
	Animation *AnimationSpec `json:"animation,omitempty"`
}

// ParseCommand decodes a JSON command.
func ParseCommand(data []byte) (Command, error) {
	var c Command
	if err := json.Unmarshal(data, &c); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	return c, nil
}

// Resolve converts the command into a direction and animation.
func (c Command) Resolve(fallback transition.Animation) (transition.Direction, transition.Animation, error) {
	d, err := transition.ParseDirection(c.Direction)
	if err != nil {
		return 0, transition.Animation{}, err
	}
	a, err := c.ResolveAnimation(fallback)
	return d, a, err
}

// ResolveAnimation returns the command's animation, or fallback if it has none.
func (c Command) ResolveAnimation(fallback transition.Animation) (transition.Animation, error) {
	if c.Animation == nil {
		return fallback, nil
	}
	return c.Animation.Animation()
}

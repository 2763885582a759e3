package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/transition"
	"gopkg.in/yaml.v2"
)

// AnimationSpec is the textual form of a transition.Animation used in the
// config file and in control commands.
type AnimationSpec struct {
	Kind       string `yaml:"kind" json:"kind,omitempty"`
	Easing     string `yaml:"easing" json:"easing,omitempty"`
	Duration   string `yaml:"duration" json:"duration,omitempty"`
	DurationMs int64  `yaml:"durationMs" json:"durationMs,omitempty"`
}

// Animation converts s into a transition.Animation. Duration takes
// precedence over DurationMs.
func (s AnimationSpec) Animation() (transition.Animation, error) {
	d := time.Duration(s.DurationMs) * time.Millisecond
	if s.Duration != "" {
		var err error
		d, err = time.ParseDuration(s.Duration)
		if err != nil {
			return transition.Animation{}, fmt.Errorf("animation duration: %w", err)
		}
	}
	return transition.ParseAnimation(s.Kind, s.Easing, d)
}

type StripConfig struct {
	Renderer    string        `yaml:"renderer"`
	Pixels      int           `yaml:"pixels"`
	TrailLength int           `yaml:"trailLength"`
	FrameRate   float64       `yaml:"frameRate"`
	Background  string        `yaml:"background"`
	Saturation  float64       `yaml:"saturation"`
	Luminance   float64       `yaml:"luminance"`
	Glow        int           `yaml:"glow"`
	Gradient    GradientTable `yaml:"gradient"`
}

type TransitionConfig struct {
	From      float64       `yaml:"from"`
	To        float64       `yaml:"to"`
	Tick      time.Duration `yaml:"tick"`
	Animation AnimationSpec `yaml:"animation"`
}

// Config is the tweentx configuration file.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip      StripConfig      `yaml:"strip"`
	Transition TransitionConfig `yaml:"transition"`
	HTTP       struct {
		Addr   string `yaml:"addr"`
		Static string `yaml:"static"`
	} `yaml:"http"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration for a 500 pixel strip filling from
// 0 to 100 over 400ms.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

// LoadConfig reads a YAML config file and fills in defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var c Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.URL == "" {
		c.Mqtt.URL = "tcp://localhost:1883"
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "tweentx"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "home/xmastree/transition"
	}
	if c.Strip.Renderer == "" {
		c.Strip.Renderer = "bar"
	}
	if c.Strip.Pixels == 0 {
		c.Strip.Pixels = 500
	}
	if c.Strip.TrailLength == 0 {
		c.Strip.TrailLength = 200
	}
	if c.Strip.FrameRate == 0 {
		c.Strip.FrameRate = 30
	}
	if c.Strip.Background == "" {
		c.Strip.Background = "#000005"
	}
	if c.Strip.Saturation == 0 {
		c.Strip.Saturation = 1.0
	}
	if c.Strip.Luminance == 0 {
		c.Strip.Luminance = 0.05
	}
	if c.Strip.Glow == 0 {
		c.Strip.Glow = 6
	}
	if len(c.Strip.Gradient) == 0 {
		c.Strip.Gradient = DefaultGradient()
	}
	if c.Transition.From == 0 && c.Transition.To == 0 {
		c.Transition.To = 100
	}
	if c.Transition.Tick == 0 {
		c.Transition.Tick = transition.DefaultTick
	}
	if c.Transition.Animation.Duration == "" && c.Transition.Animation.DurationMs == 0 {
		c.Transition.Animation.Duration = "400ms"
	}
	if c.Transition.Animation.Easing == "" {
		c.Transition.Animation.Easing = "ease-in-out"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":3000"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the fields that defaults cannot repair.
func (c Config) Validate() error {
	var errs []error
	if c.Strip.Pixels < 0 {
		errs = append(errs, fmt.Errorf("strip.pixels must be positive, got %d", c.Strip.Pixels))
	}
	if c.Strip.FrameRate < 0 || c.Strip.FrameRate > maxFrameRate {
		errs = append(errs, fmt.Errorf("strip.frameRate must be between 0 and %g, got %v", maxFrameRate, c.Strip.FrameRate))
	}
	if c.Strip.Renderer != "bar" && c.Strip.Renderer != "trail" {
		errs = append(errs, fmt.Errorf("strip.renderer must be bar or trail, got %q", c.Strip.Renderer))
	}
	if _, err := colorful.Hex(c.Strip.Background); err != nil {
		errs = append(errs, fmt.Errorf("strip.background: %w", err))
	}
	if c.Mqtt.Qos > 2 {
		errs = append(errs, fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.Mqtt.Qos))
	}
	if c.Transition.Tick < 0 {
		errs = append(errs, fmt.Errorf("transition.tick must be positive, got %s", c.Transition.Tick))
	}
	if a, err := c.Transition.Animation.Animation(); err != nil {
		errs = append(errs, fmt.Errorf("transition.animation: %w", err))
	} else if err := a.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("transition.animation: %w", err))
	}
	return errors.Join(errs...)
}

// Phases returns the transition endpoints as phase declarations.
func (c Config) Phases() []transition.Phase {
	return []transition.Phase{transition.From(c.Transition.From), transition.To(c.Transition.To)}
}

// DefaultAnimation returns the configured animation. It is only valid on a
// config that passed Validate.
func (c Config) DefaultAnimation() transition.Animation {
	a, _ := c.Transition.Animation.Animation()
	return a
}

// maxFrameRate is the highest frame rate with a non-zero interval.
const maxFrameRate = float64(time.Second / time.Nanosecond)

// FrameInterval returns the time between published frames. It is never
// less than a nanosecond.
func (c Config) FrameInterval() time.Duration {
	return max(time.Duration(float64(time.Second)/c.Strip.FrameRate), time.Nanosecond)
}

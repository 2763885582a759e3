package stream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

const publishTimeout = 2 * time.Second

// Publisher is the part of mqtt.Client the Streamer uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Source is anything that exposes the animated value.
type Source interface {
	Read() float64
}

// Streamer that streams RGB data frames to an LED strip whenever the
// animated value changes.
type Streamer struct {
	client   Publisher
	topic    string
	qos      byte
	renderer Renderer
	interval time.Duration
	dirty    chan struct{}
	logger   *slog.Logger
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Publisher, renderer Renderer, logger *slog.Logger) *Streamer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.qos = config.Mqtt.Qos
	s.renderer = renderer
	s.interval = config.FrameInterval()
	s.dirty = make(chan struct{}, 1)
	s.logger = logger.With("component", "streamer")
	return s
}

// Redraw marks the strip as needing a new frame. It never blocks, so it can
// be handed to a transition as its redraw callback.
func (s *Streamer) Redraw() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

// SendFrame renders value and publishes it as binary over MQTT.
func (s *Streamer) SendFrame(value float64) error {
	f := s.renderer.CalculateFrame(value)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.topic, s.qos, false, b)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", s.topic)
	}
	return token.Error()
}

// Run sends the current frame, then sends a frame on every tick that
// follows a Redraw, until ctx is done.
func (s *Streamer) Run(ctx context.Context, src Source) error {
	s.logger.Info("streaming", "topic", s.topic, "interval", s.interval)
	if err := s.SendFrame(src.Read()); err != nil {
		s.logger.Warn("send frame failed", "error", err)
	}

	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-publishTimer.C:
			select {
			case <-s.dirty:
			default:
				continue
			}
			if err := s.SendFrame(src.Read()); err != nil {
				s.logger.Warn("send frame failed", "error", err)
			}
		}
	}
}

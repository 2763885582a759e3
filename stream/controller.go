package stream

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/tweentx/transition"
)

// Subscriber is the part of mqtt.Client the Controller uses.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Controller plays the transition in response to commands received on the
// control topic.
type Controller struct {
	client     Subscriber
	topic      string
	qos        byte
	transition *transition.Transition
	fallback   transition.Animation
	logger     *slog.Logger
}

// NewController creates an instance of a Controller.
func NewController(config Config, client Subscriber, tr *transition.Transition, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := new(Controller)
	c.client = client
	c.topic = config.Mqtt.Topics.Control
	c.qos = config.Mqtt.Qos
	c.transition = tr
	c.fallback = config.DefaultAnimation()
	c.logger = logger.With("component", "controller")
	return c
}

func (c *Controller) handleMessage(client mqtt.Client, msg mqtt.Message) {
	c.logger.Debug("received command", "id", msg.MessageID(), "topic", msg.Topic(), "payload", string(msg.Payload()))
	if err := c.Apply(msg.Payload()); err != nil {
		c.logger.Warn("ignoring command", "topic", msg.Topic(), "error", err)
	}
}

// Apply decodes a JSON command and submits it to the transition.
func (c *Controller) Apply(payload []byte) error {
	cmd, err := ParseCommand(payload)
	if err != nil {
		return err
	}
	d, a, err := cmd.Resolve(c.fallback)
	if err != nil {
		return err
	}
	if err := c.transition.Play(a, d); err != nil {
		return fmt.Errorf("play %s %s: %w", d, a, err)
	}
	c.logger.Info("playing", "direction", d, "animation", a)
	return nil
}

// Subscribe listens for commands on the control topic.
func (c *Controller) Subscribe() error {
	token := c.client.Subscribe(c.topic, c.qos, c.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", c.topic, token.Error())
	}
	c.logger.Info("subscribed", "topic", c.topic)
	return nil
}

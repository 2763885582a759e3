package stream

import (
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient records publishes and subscriptions in place of a broker.
type fakeClient struct {
	mu        sync.Mutex
	published []published
	handlers  map[string]mqtt.MessageHandler
	err       error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return &fakeToken{err: c.err}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handlers == nil {
		c.handlers = make(map[string]mqtt.MessageHandler)
	}
	c.handlers[topic] = callback
	return &fakeToken{err: c.err}
}

func (c *fakeClient) frames() []published {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]published(nil), c.published...)
}

func (c *fakeClient) handler(topic string) mqtt.MessageHandler {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handlers[topic]
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

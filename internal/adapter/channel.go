package adapter

import (
	"context"
	"encoding/json"
	"maps"
	"sync"

	"github.com/MKhiriev/go-hub-channel/models"
)

// Handler receives the payload of a server-pushed event.
type Handler func(payload json.RawMessage)

// WebsocketChannel is a [Channel] bound to one topic of a [Socket].
type WebsocketChannel struct {
	socket *Socket
	topic  string

	mu       sync.RWMutex
	params   map[string]any
	joinRef  string
	handlers map[string][]Handler
}

func newWebsocketChannel(s *Socket, topic string, params map[string]any) *WebsocketChannel {
	p := make(map[string]any, len(params))
	maps.Copy(p, params)

	return &WebsocketChannel{
		socket:   s,
		topic:    topic,
		params:   p,
		handlers: make(map[string][]Handler),
	}
}

// Topic returns the channel topic, e.g. "hub:abc123".
func (c *WebsocketChannel) Topic() string {
	return c.topic
}

// Join sends phx_join with the current params and waits for the reply.
// The returned reply carries the join response (e.g. session id, perms token).
func (c *WebsocketChannel) Join(ctx context.Context) (models.Reply, error) {
	ref := c.socket.nextRef()

	c.mu.Lock()
	c.joinRef = ref
	params := maps.Clone(c.params)
	c.mu.Unlock()

	reply, err := c.socket.request(ctx, ref, ref, c.topic, eventJoin, params)
	if err != nil {
		return models.Reply{}, err
	}
	if !reply.OK() {
		return reply, &ReplyError{Event: eventJoin, Reason: reply.Reason()}
	}

	return reply, nil
}

// Leave sends phx_leave and waits for the reply. Once acknowledged, frames
// for the topic are no longer delivered to this channel.
func (c *WebsocketChannel) Leave(ctx context.Context) error {
	if _, err := c.Push(ctx, eventLeave, nil); err != nil {
		return err
	}
	c.socket.removeChannel(c)
	return nil
}

// Push implements [Channel].
func (c *WebsocketChannel) Push(ctx context.Context, event string, payload any) (models.Reply, error) {
	reply, err := c.socket.request(ctx, c.currentJoinRef(), c.socket.nextRef(), c.topic, event, payload)
	if err != nil {
		return models.Reply{}, err
	}
	if !reply.OK() {
		return reply, &ReplyError{Event: event, Reason: reply.Reason()}
	}

	return reply, nil
}

// Cast implements [Channel].
func (c *WebsocketChannel) Cast(event string, payload any) error {
	return c.socket.enqueue(c.currentJoinRef(), c.socket.nextRef(), c.topic, event, payload)
}

// On registers fn for server-pushed events named event. Handlers run on the
// socket's read goroutine and must not block.
func (c *WebsocketChannel) On(event string, fn Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = append(c.handlers[event], fn)
}

// Params implements [Channel].
func (c *WebsocketChannel) Params() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.params)
}

// DeleteParams implements [Channel].
func (c *WebsocketChannel) DeleteParams(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.params, k)
	}
}

// Disconnect implements [Channel]. It closes the whole socket.
func (c *WebsocketChannel) Disconnect() error {
	return c.socket.Disconnect()
}

func (c *WebsocketChannel) currentJoinRef() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joinRef
}

func (c *WebsocketChannel) handle(f frame) {
	switch f.Event {
	case eventClose:
		c.socket.logger.Info().Str("topic", c.topic).Msg("channel closed by server")
	case eventError:
		c.socket.logger.Warn().Str("topic", c.topic).Msg("channel crashed on server")
	}

	c.mu.RLock()
	handlers := append([]Handler(nil), c.handlers[f.Event]...)
	c.mu.RUnlock()

	for _, fn := range handlers {
		fn(f.Payload)
	}
}

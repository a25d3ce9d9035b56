package client

import (
	"encoding/json"
	"fmt"
	"sync"
)

type occupantCounter interface {
	SetInitialOccupantCount(n int)
}

// presence tracks the hub's presence state and reports the number of other
// occupants. The state may arrive before the own session id is known, so the
// count is recomputed on both.
type presence struct {
	mu       sync.Mutex
	self     string
	sessions map[string]struct{}
	counter  occupantCounter
}

func newPresence(counter occupantCounter) *presence {
	return &presence{
		sessions: make(map[string]struct{}),
		counter:  counter,
	}
}

// setState replaces the known sessions with the keys of a presence_state
// payload.
func (p *presence) setState(payload json.RawMessage) error {
	var state map[string]json.RawMessage
	if err := json.Unmarshal(payload, &state); err != nil {
		return fmt.Errorf("decode presence state: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.sessions = make(map[string]struct{}, len(state))
	for id := range state {
		p.sessions[id] = struct{}{}
	}
	p.recount()
	return nil
}

func (p *presence) setSelf(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.self = sessionID
	p.recount()
}

func (p *presence) recount() {
	n := len(p.sessions)
	if _, ok := p.sessions[p.self]; ok && p.self != "" {
		n--
	}
	p.counter.SetInitialOccupantCount(n)
}

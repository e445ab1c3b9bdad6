// Package ws provides the realtime notification channel. Connected clients
// join a room named after their account identifier; delivery agents
// additionally share an audience room for workload broadcasts. Delivery is
// best effort: a slow or absent client never blocks or fails the business
// operation that emitted the event.
package ws

import (
	"log/slog"
	"sync"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
)

// sendBuffer is the per-session outbound queue depth. Events beyond it are
// dropped rather than applying backpressure to command handlers.
const sendBuffer = 16

// Envelope is the wire format for every pushed event.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// session is one connected client. A session belongs to at most one
// identity room; joining again from the same session supersedes the
// previous membership.
type session struct {
	send chan Envelope

	mu       sync.Mutex
	identity *kernel.UUID
	agent    bool
}

// Hub tracks connected sessions and implements ports.Notifier.
type Hub struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[*session]struct{}
}

var _ ports.Notifier = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger,
		sessions: make(map[*session]struct{}),
	}
}

// register adds a connected session.
func (h *Hub) register(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s] = struct{}{}
}

// unregister removes a disconnected session.
func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s)
}

// join binds the session to an identity room, superseding any previous
// membership, and marks agent sessions for audience broadcasts.
func (h *Hub) join(s *session, identity kernel.UUID, agent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	s.agent = agent
}

// NotifyIdentity delivers an event to every session joined to the identity's
// room. Dropped silently when nobody is connected.
func (h *Hub) NotifyIdentity(identity kernel.UUID, event string, payload any) {
	h.deliver(event, payload, func(s *session) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.identity != nil && s.identity.IsEqual(identity)
	})
}

// NotifyAgents delivers an event to every joined agent session.
func (h *Hub) NotifyAgents(event string, payload any) {
	h.deliver(event, payload, func(s *session) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.identity != nil && s.agent
	})
}

// Broadcast delivers an event to every joined session regardless of room.
func (h *Hub) Broadcast(event string, payload any) {
	h.deliver(event, payload, func(s *session) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.identity != nil
	})
}

func (h *Hub) deliver(event string, payload any, match func(*session) bool) {
	envelope := Envelope{Event: event, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.sessions {
		if !match(s) {
			continue
		}
		select {
		case s.send <- envelope:
		default:
			// Slow consumer; drop instead of blocking the caller.
			h.logger.Warn("dropping realtime event", "event", event)
		}
	}
}

package ws

import (
	"log/slog"
	"testing"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.Default())
}

func joinedSession(h *Hub, identity kernel.UUID, agent bool) *session {
	s := &session{send: make(chan Envelope, sendBuffer)}
	h.register(s)
	h.join(s, identity, agent)
	return s
}

func drain(s *session) []Envelope {
	var events []Envelope
	for {
		select {
		case e := <-s.send:
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestHub_NotifyIdentity_DeliversOnlyToMatchingRoom(t *testing.T) {
	h := newTestHub()
	customerID := kernel.NewUUID()
	customer := joinedSession(h, customerID, false)
	other := joinedSession(h, kernel.NewUUID(), false)

	h.NotifyIdentity(customerID, ports.EventParcelBooked, "payload")

	events := drain(customer)
	require.Len(t, events, 1)
	assert.Equal(t, ports.EventParcelBooked, events[0].Event)
	assert.Equal(t, "payload", events[0].Payload)

	assert.Empty(t, drain(other))
}

func TestHub_NotifyIdentity_NobodyConnected_IsSilent(t *testing.T) {
	h := newTestHub()
	// Must not panic or block.
	h.NotifyIdentity(kernel.NewUUID(), ports.EventParcelStatusUpdated, nil)
}

func TestHub_NotifyAgents_SkipsNonAgents(t *testing.T) {
	h := newTestHub()
	agent := joinedSession(h, kernel.NewUUID(), true)
	customer := joinedSession(h, kernel.NewUUID(), false)

	h.NotifyAgents(ports.EventParcelAssigned, "work")

	require.Len(t, drain(agent), 1)
	assert.Empty(t, drain(customer))
}

func TestHub_Broadcast_ReachesEveryJoinedSession(t *testing.T) {
	h := newTestHub()
	a := joinedSession(h, kernel.NewUUID(), true)
	b := joinedSession(h, kernel.NewUUID(), false)

	unjoined := &session{send: make(chan Envelope, sendBuffer)}
	h.register(unjoined)

	h.Broadcast(ports.EventStatsSnapshot, nil)

	assert.Len(t, drain(a), 1)
	assert.Len(t, drain(b), 1)
	assert.Empty(t, drain(unjoined), "unjoined sessions receive nothing")
}

func TestHub_Join_SupersedesPreviousRoom(t *testing.T) {
	h := newTestHub()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	s := joinedSession(h, first, false)
	h.join(s, second, false)

	h.NotifyIdentity(first, ports.EventParcelStatusUpdated, nil)
	assert.Empty(t, drain(s), "old room membership must not survive a rejoin")

	h.NotifyIdentity(second, ports.EventParcelStatusUpdated, nil)
	assert.Len(t, drain(s), 1)
}

func TestHub_SlowConsumer_DropsInsteadOfBlocking(t *testing.T) {
	h := newTestHub()
	identity := kernel.NewUUID()

	s := &session{send: make(chan Envelope, 1)}
	h.register(s)
	h.join(s, identity, false)

	h.NotifyIdentity(identity, ports.EventParcelStatusUpdated, 1)
	h.NotifyIdentity(identity, ports.EventParcelStatusUpdated, 2)

	events := drain(s)
	require.Len(t, events, 1, "second event dropped on a full buffer")
	assert.Equal(t, 1, events[0].Payload)
}

func TestHub_Unregister_StopsDelivery(t *testing.T) {
	h := newTestHub()
	identity := kernel.NewUUID()
	s := joinedSession(h, identity, false)

	h.unregister(s)
	h.NotifyIdentity(identity, ports.EventParcelStatusUpdated, nil)

	assert.Empty(t, drain(s))
}

package ports

import "parcelhub/internal/core/domain/model/kernel"

// Event names pushed over the live channel. Payload shapes are owned by the
// command handlers that emit them.
const (
	// EventParcelBooked is sent to the booking customer's room.
	EventParcelBooked = "parcelBooked"

	// EventParcelAssigned is sent to the agents audience when a new parcel
	// becomes available, so agent dashboards can refresh.
	EventParcelAssigned = "parcelAssigned"

	// EventParcelStatusUpdated is sent to the owning customer's room on a
	// lifecycle transition. Its payload carries the new status and the
	// recomputed count of parcels at that status, a point-in-time snapshot.
	EventParcelStatusUpdated = "parcelStatusUpdated"

	// EventStatsSnapshot is pushed periodically to the agents audience with
	// the current aggregate counters.
	EventStatsSnapshot = "statsSnapshot"
)

// Notifier delivers lifecycle events to live sessions. Delivery is
// best-effort and fire-and-forget: events to empty rooms are dropped, and no
// delivery failure ever propagates to the operation that emitted the event.
type Notifier interface {
	// NotifyIdentity delivers an event to every session in the identity's room.
	NotifyIdentity(identityID kernel.UUID, event string, payload any)

	// NotifyAgents delivers an event to the shared agents audience. This is
	// the targeted replacement for a true global broadcast on each booking.
	NotifyAgents(event string, payload any)

	// Broadcast delivers an event to every connected session.
	Broadcast(event string, payload any)
}

// NopNotifier discards all events. Used when wiring commands in tests or
// tools that have no live channel.
type NopNotifier struct{}

func (NopNotifier) NotifyIdentity(kernel.UUID, string, any) {}
func (NopNotifier) NotifyAgents(string, any)                {}
func (NopNotifier) Broadcast(string, any)                   {}

package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels move
// through the delivery workflow in order and never leave a terminal state.
//
// State transitions:
//
//	Booked ──> PickedUp ──> InTransit ──> Delivered
//	   │           │            │
//	   └───────────┴────────────┴──> Failed
//
// Delivered and Failed are terminal: no outgoing transitions exist and
// same-state updates are rejected like any other missing edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Booked is the initial status assigned when a customer books a parcel.
	Booked

	// PickedUp indicates an agent has collected the parcel from the
	// pickup address.
	PickedUp

	// InTransit indicates the parcel is on its way to the delivery address.
	InTransit

	// Delivered indicates the parcel reached its destination. Terminal.
	Delivered

	// Failed indicates delivery was abandoned. Reachable from any
	// non-terminal status. Terminal.
	Failed
)

// getStatusStrings returns the display names for all Status values,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Booked:    "Booked",
		PickedUp:  "Picked Up",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// getValidStatusStrings returns display names for the five valid statuses
// only, supporting validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Booked:    "Booked",
		PickedUp:  "Picked Up",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// transitions is the set of allowed forward edges. An absent entry means the
// transition is rejected, which also covers same-state updates and any
// mutation of a terminal status.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Booked:    {PickedUp, Failed},
		PickedUp:  {InTransit, Failed},
		InTransit: {Delivered, Failed},
	}
}

// AllStatuses returns the five valid statuses in lifecycle order. Used by
// read models that must report a full, zero-filled histogram.
func AllStatuses() []Status {
	return []Status{Booked, PickedUp, InTransit, Delivered, Failed}
}

// StatusFromString parses a status display name ("Booked", "Picked Up",
// "In Transit", "Delivered", "Failed") into a Status.
//
// Returns an error if the name does not match any valid status. Parsing is
// exact: casing and spacing must match the display name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether (s, next) is an allowed edge in the
// lifecycle state machine. Edges are strictly adjacent: Booked cannot jump
// to InTransit even though InTransit is reachable through PickedUp.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition, returning the new status.
//
// Returns:
//   - (next, nil) when (s, next) is an allowed edge
//   - (0, error) when next is not a valid status or the edge is absent
//
// Rejections include same-state updates and any transition out of
// Delivered or Failed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}

	return next, nil
}

package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so a parcel's
// journey only ever moves forward.
//
// State transitions:
//
//	pending ─> picked_up ─> in_transit ─> at_hub ─> out_for_delivery ─> delivered
//	    │           │            │           │              │
//	    └───────────┴────────────┴───────────┴──────────────┴──> failed / cancelled
//
// Forward jumps along the main chain are allowed (a parcel scanned straight
// from picked_up to delivered is legal); backward moves and self-transitions
// are not. delivered, failed, and cancelled are terminal: no transition out
// of them is ever accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the sole initial status: the parcel is registered and
	// waiting to be picked up.
	Pending

	// PickedUp indicates the parcel was collected from the sender or a
	// pickup partner.
	PickedUp

	// InTransit indicates the parcel is moving between locations.
	InTransit

	// AtHub indicates the parcel reached a sorting hub.
	AtHub

	// OutForDelivery indicates a driver is carrying the parcel to the
	// recipient.
	OutForDelivery

	// Delivered is the successful terminal state. Entering it stamps the
	// parcel's delivery time.
	Delivered

	// Failed is the terminal state for deliveries that could not complete.
	Failed

	// Cancelled is the terminal state for parcels withdrawn before delivery.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		AtHub:          "at_hub",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		AtHub:          "at_hub",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Failed:         "failed",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "picked_up"). Returns a ValueIsInvalidError for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "picked_up", ...).
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// TransitionTo validates the state change from s to next and returns next
// on success.
//
// Rules:
//   - nothing leaves a terminal state
//   - failed and cancelled are reachable from any non-terminal state
//   - otherwise the move must be strictly forward along the main chain
//
// Returns an InvalidTransitionError describing both endpoints when the
// change is not allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(),
			fmt.Errorf("%s is a terminal status", s.String()))
	}

	if next == Failed || next == Cancelled {
		return next, nil
	}

	if next <= s {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(s.String(), next.String(),
			fmt.Errorf("%s does not advance %s", next.String(), s.String()))
	}

	return next, nil
}

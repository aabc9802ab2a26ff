package services

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/parcel"
)

// ErrTrailIsCorrupt is returned when an audit trail cannot be replayed into
// a consistent status history, meaning events were lost, reordered, or
// written outside the transition rules.
var ErrTrailIsCorrupt = errors.New("audit trail is corrupt")

// TrailReplayer reconstructs a parcel's status from its append-only audit
// trail. Because every status change writes exactly one event in the same
// transaction, replaying the trail in chronological order must end at the
// parcel's stored status; a mismatch indicates corruption.
//
// Example usage:
//
//	replayer := NewTrailReplayer()
//	status, err := replayer.Replay(events)
//	if errors.Is(err, ErrTrailIsCorrupt) {
//	    // the trail does not form a legal transition chain
//	    return
//	}
type TrailReplayer struct{}

// NewTrailReplayer creates a new TrailReplayer instance.
func NewTrailReplayer() TrailReplayer {
	return TrailReplayer{}
}

// Replay folds a chronologically ordered trail into the status it implies.
// An empty trail yields the initial pending status. Each event must be a
// legal transition from the state the previous events produced.
func (TrailReplayer) Replay(events []*parcel.Event) (parcel.Status, error) {
	current := parcel.Pending

	for i, event := range events {
		if err := event.Validate(); err != nil {
			return parcel.Unknown, err
		}

		// The first event records the creation of the parcel in the
		// pending state and does not move the machine.
		if i == 0 && event.Status() == parcel.Pending {
			continue
		}

		next, err := current.TransitionTo(event.Status())
		if err != nil {
			return parcel.Unknown, fmt.Errorf("%w: event %s: %w",
				ErrTrailIsCorrupt, event.ID().String(), err)
		}
		current = next
	}

	return current, nil
}

// Verify replays the trail and compares the outcome with the status the
// parcel currently holds.
func (r TrailReplayer) Verify(p *parcel.Parcel, events []*parcel.Event) error {
	if err := p.Validate(); err != nil {
		return err
	}

	replayed, err := r.Replay(events)
	if err != nil {
		return err
	}
	if replayed != p.Status() {
		return fmt.Errorf("%w: replayed status %s does not match stored status %s",
			ErrTrailIsCorrupt, replayed.String(), p.Status().String())
	}
	return nil
}

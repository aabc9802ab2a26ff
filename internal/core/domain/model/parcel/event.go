package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not
	// created through NewEvent or RestoreEvent.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")
)

// Event is one entry of a parcel's append-only audit trail. Events are
// immutable: once recorded they are never updated or deleted, so the trail
// can always replay the parcel's full history.
type Event struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	actorID    kernel.UUID
	actorRole  ActorRole
	status     Status
	location   string
	notes      string
	photo      string
	occurredAt time.Time

	isConstructed bool
}

// NewEvent records a status change performed by an actor. Location, notes
// and photo are optional context.
func NewEvent(
	parcelID kernel.UUID,
	actorID kernel.UUID,
	actorRole ActorRole,
	status Status,
	location string,
	notes string,
	photo string,
) (*Event, error) {
	if err := errors.Join(
		parcelID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:            kernel.NewUUID(),
		parcelID:      parcelID,
		actorID:       actorID,
		actorRole:     actorRole,
		status:        status,
		location:      location,
		notes:         notes,
		photo:         photo,
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEventParams carries the persisted state of an audit event.
type RestoreEventParams struct {
	ID         kernel.UUID
	ParcelID   kernel.UUID
	ActorID    kernel.UUID
	ActorRole  ActorRole
	Status     Status
	Location   string
	Notes      string
	Photo      string
	OccurredAt time.Time
}

// RestoreEvent reconstructs an audit event from persistence.
func RestoreEvent(params RestoreEventParams) (*Event, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.ParcelID.Validate(),
		params.ActorID.Validate(),
		params.ActorRole.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Event{
		id:            params.ID,
		parcelID:      params.ParcelID,
		actorID:       params.ActorID,
		actorRole:     params.ActorRole,
		status:        params.Status,
		location:      params.Location,
		notes:         params.Notes,
		photo:         params.Photo,
		occurredAt:    params.OccurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// IsEqual compares two events by identity.
func (e *Event) IsEqual(other *Event) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel this event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// ActorID returns the identifier of the user who performed the change.
func (e *Event) ActorID() kernel.UUID {
	return e.actorID
}

// ActorRole returns the role the actor held at the time of the change.
func (e *Event) ActorRole() ActorRole {
	return e.actorRole
}

// Status returns the status the parcel entered with this event.
func (e *Event) Status() Status {
	return e.status
}

// Location returns the free-form location string, empty if none.
func (e *Event) Location() string {
	return e.location
}

// Notes returns optional handler notes.
func (e *Event) Notes() string {
	return e.notes
}

// Photo returns an optional photo reference.
func (e *Event) Photo() string {
	return e.photo
}

// OccurredAt returns when the change was recorded.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
		"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
	)
)

// UpdateParcelStatusCommand represents a request to move a parcel along its
// lifecycle. Carries the acting user so the audit trail records who made
// the change, plus optional location, notes, and proof context.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(
//	    parcelID, parcel.PickedUp, driverID, parcel.RoleDriver,
//	    "Bole hub", "collected from pickup point", "", nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	next      parcel.Status
	actorID   kernel.UUID
	actorRole parcel.ActorRole
	location  string
	notes     string
	proof     string
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's
// status. Whether the transition itself is legal is decided by the
// aggregate inside the transaction, against the currently stored status.
// A non-nil driverID additionally assigns the driver as part of the same
// change.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	next parcel.Status,
	actorID kernel.UUID,
	actorRole parcel.ActorRole,
	location string,
	notes string,
	proof string,
	driverID *kernel.UUID,
) (UpdateParcelStatusCommand, error) {
	statusCommand := UpdateParcelStatusCommand{
		location: location,
		notes:    notes,
		proof:    proof,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setParcelID(parcelID),
		statusCommand.setNext(next),
		statusCommand.setActor(actorID, actorRole),
		statusCommand.setDriverID(driverID),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to move.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Next returns the requested target status.
func (c UpdateParcelStatusCommand) Next() parcel.Status {
	return c.next
}

// ActorID returns the identifier of the user making the change.
func (c UpdateParcelStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user making the change.
func (c UpdateParcelStatusCommand) ActorRole() parcel.ActorRole {
	return c.actorRole
}

// Location returns the optional free-form location of the change.
func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

// Notes returns optional handler notes.
func (c UpdateParcelStatusCommand) Notes() string {
	return c.notes
}

// Proof returns the optional delivery proof reference.
func (c UpdateParcelStatusCommand) Proof() string {
	return c.proof
}

// DriverID returns the driver to assign along with the change, nil when the
// assignment is unchanged.
func (c UpdateParcelStatusCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setNext(next parcel.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}

func (c *UpdateParcelStatusCommand) setActor(actorID kernel.UUID, actorRole parcel.ActorRole) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}
	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}

func (c *UpdateParcelStatusCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

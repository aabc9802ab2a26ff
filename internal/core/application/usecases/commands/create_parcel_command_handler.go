package commands

import (
	"context"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"
	"parceltrack/internal/core/domain/model/parcel"
)

// CreateParcelResult carries the identity minted for a new parcel.
type CreateParcelResult struct {
	ParcelID   kernel.UUID
	TrackingID string
	QRHash     string
}

// CreateParcelCommandHandler handles the business logic for parcel
// registration. Mints the tracking id, creates the aggregate in the pending
// state, and records the first audit event and an outbox notification in
// the same transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command. The parcel row, the
// creation audit event, and the sender's notification commit atomically or
// not at all. Returns the minted tracking identity on success.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}
	params := cmd.Params()

	newParcel, err := parcel.NewParcel(
		params.ParcelID,
		parcel.NewTrackingID(),
		params.SenderID,
		params.RecipientName,
		params.RecipientPhone,
		params.Weight,
		params.Price,
		params.PaymentMethod,
	)
	if err != nil {
		return CreateParcelResult{}, err
	}

	newParcel.SetDescription(params.Description)
	newParcel.SetPhotos(params.Photos)
	if params.Distance != nil {
		if err = newParcel.SetDistance(*params.Distance); err != nil {
			return CreateParcelResult{}, err
		}
	}
	if params.PickupPartnerID != nil {
		if err = newParcel.AssignPickupPartner(*params.PickupPartnerID); err != nil {
			return CreateParcelResult{}, err
		}
	}
	if params.DropoffPartnerID != nil {
		if err = newParcel.AssignDropoffPartner(*params.DropoffPartnerID); err != nil {
			return CreateParcelResult{}, err
		}
	}

	event, err := parcel.NewEvent(
		newParcel.ID(),
		params.SenderID,
		params.SenderRole,
		parcel.Pending,
		"",
		"parcel registered",
		"",
	)
	if err != nil {
		return CreateParcelResult{}, err
	}

	parcelID := newParcel.ID()
	note, err := notification.NewNotification(
		params.SenderID,
		&parcelID,
		"Parcel registered",
		fmt.Sprintf("Your parcel %s has been registered and is awaiting pickup", newParcel.TrackingID().String()),
	)
	if err != nil {
		return CreateParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return CreateParcelResult{}, err
	}
	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return CreateParcelResult{}, err
	}
	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	return CreateParcelResult{
		ParcelID:   newParcel.ID(),
		TrackingID: newParcel.TrackingID().String(),
		QRHash:     newParcel.QRHash(),
	}, nil
}

package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel is the aggregate root of the lifecycle tracking subsystem. It owns
// the parcel's identity, its tracking identifier, and the status state
// machine governing its journey from creation to delivery.
//
// Invariants:
//   - trackingId and its derived qrHash never change once minted
//   - status only moves along the transitions defined by Status
//   - deliveredAt is stamped exactly once, on entering the delivered state
//   - the version counter serializes concurrent writers (optimistic check
//     at the persistence boundary)
//
// Use NewParcel for fresh parcels and RestoreParcel when loading from
// persistence; direct struct construction fails Validate.
type Parcel struct {
	id               kernel.UUID
	trackingID       TrackingID
	senderID         kernel.UUID
	recipientName    string
	recipientPhone   string
	pickupPartnerID  *kernel.UUID
	dropoffPartnerID *kernel.UUID
	driverID         *kernel.UUID
	status           Status
	weight           decimal.Decimal
	distance         *decimal.Decimal
	price            kernel.Money
	paymentMethod    PaymentMethod
	isPaid           bool
	description      string
	photos           []string
	deliveryProof    string
	rating           *int
	review           string
	createdAt        time.Time
	deliveredAt      *time.Time
	version          int

	isConstructed bool
}

// NewParcel creates a parcel in the pending state with a fresh version
// counter. Recipient name and phone are required; weight must be positive;
// price and payment method must be valid.
func NewParcel(
	id kernel.UUID,
	trackingID TrackingID,
	senderID kernel.UUID,
	recipientName string,
	recipientPhone string,
	weight decimal.Decimal,
	price kernel.Money,
	paymentMethod PaymentMethod,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        Pending,
		isPaid:        false,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingID(trackingID),
		parcel.setSenderID(senderID),
		parcel.setRecipientName(recipientName),
		parcel.setRecipientPhone(recipientPhone),
		parcel.setWeight(weight),
		parcel.setPrice(price),
		parcel.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcelParams carries the full persisted state of a parcel.
type RestoreParcelParams struct {
	ID               kernel.UUID
	TrackingID       TrackingID
	SenderID         kernel.UUID
	RecipientName    string
	RecipientPhone   string
	PickupPartnerID  *kernel.UUID
	DropoffPartnerID *kernel.UUID
	DriverID         *kernel.UUID
	Status           Status
	Weight           decimal.Decimal
	Distance         *decimal.Decimal
	Price            kernel.Money
	PaymentMethod    PaymentMethod
	IsPaid           bool
	Description      string
	Photos           []string
	DeliveryProof    string
	Rating           *int
	Review           string
	CreatedAt        time.Time
	DeliveredAt      *time.Time
	Version          int
}

// RestoreParcel reconstructs a parcel from persistence, re-validating the
// same invariants NewParcel enforces plus the persisted status and version.
func RestoreParcel(params RestoreParcelParams) (*Parcel, error) {
	parcel, err := NewParcel(
		params.ID,
		params.TrackingID,
		params.SenderID,
		params.RecipientName,
		params.RecipientPhone,
		params.Weight,
		params.Price,
		params.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}
	if params.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a valid version", params.Version))
	}

	parcel.pickupPartnerID = params.PickupPartnerID
	parcel.dropoffPartnerID = params.DropoffPartnerID
	parcel.driverID = params.DriverID
	parcel.status = params.Status
	parcel.distance = params.Distance
	parcel.isPaid = params.IsPaid
	parcel.description = params.Description
	parcel.photos = params.Photos
	parcel.deliveryProof = params.DeliveryProof
	parcel.rating = params.Rating
	parcel.review = params.Review
	parcel.createdAt = params.CreatedAt
	parcel.deliveredAt = params.DeliveredAt
	parcel.version = params.Version

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ChangeStatus applies a lifecycle transition. Illegal moves are rejected
// with an InvalidTransitionError from the Status state machine. Entering
// delivered stamps deliveredAt; it is never overwritten.
func (p *Parcel) ChangeStatus(next Status) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	p.status = newStatus
	if newStatus == Delivered && p.deliveredAt == nil {
		now := time.Now().UTC()
		p.deliveredAt = &now
	}
	return nil
}

// AssignDriver records the driver carrying the parcel. Reassignment while
// the parcel is still moving is allowed; terminal parcels reject it.
func (p *Parcel) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if p.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("parcel is already %s", p.status.String()))
	}

	p.driverID = &driverID
	return nil
}

// AssignPickupPartner records the pickup point handling the parcel.
func (p *Parcel) AssignPickupPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	p.pickupPartnerID = &partnerID
	return nil
}

// AssignDropoffPartner records the dropoff point handling the parcel.
func (p *Parcel) AssignDropoffPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	p.dropoffPartnerID = &partnerID
	return nil
}

// SetDescription attaches free-form content notes to the parcel.
func (p *Parcel) SetDescription(description string) {
	p.description = description
}

// SetPhotos attaches photo references taken at creation time.
func (p *Parcel) SetPhotos(photos []string) {
	p.photos = photos
}

// SetDistance records the estimated delivery distance in kilometers.
func (p *Parcel) SetDistance(distance decimal.Decimal) error {
	if distance.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%s is negative", distance.String()))
	}
	p.distance = &distance
	return nil
}

// AttachDeliveryProof stores the proof reference captured at handover.
func (p *Parcel) AttachDeliveryProof(proof string) {
	p.deliveryProof = proof
}

// Rate records the recipient's post-delivery rating and review.
// Only delivered parcels can be rated; the rating must be between 1 and 5.
func (p *Parcel) Rate(rating int, review string) error {
	if p.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			fmt.Errorf("parcel is %s, not delivered", p.status.String()))
	}
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	p.rating = &rating
	p.review = review
	return nil
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingID returns the immutable tracking identifier.
func (p *Parcel) TrackingID() TrackingID {
	return p.trackingID
}

// QRHash returns the verification digest derived from the tracking id.
func (p *Parcel) QRHash() string {
	return p.trackingID.QRHash()
}

// SenderID returns the sending user's identifier.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// RecipientName returns the recipient's name.
func (p *Parcel) RecipientName() string {
	return p.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (p *Parcel) RecipientPhone() string {
	return p.recipientPhone
}

// PickupPartner returns the pickup partner's ID, nil if none.
func (p *Parcel) PickupPartner() *kernel.UUID {
	return p.pickupPartnerID
}

// DropoffPartner returns the dropoff partner's ID, nil if none.
func (p *Parcel) DropoffPartner() *kernel.UUID {
	return p.dropoffPartnerID
}

// Driver returns the assigned driver's ID, nil if unassigned.
func (p *Parcel) Driver() *kernel.UUID {
	return p.driverID
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() decimal.Decimal {
	return p.weight
}

// Distance returns the delivery distance in kilometers, nil if unknown.
func (p *Parcel) Distance() *decimal.Decimal {
	return p.distance
}

// Price returns the delivery price.
func (p *Parcel) Price() kernel.Money {
	return p.price
}

// PaymentMethod returns the chosen payment channel.
func (p *Parcel) PaymentMethod() PaymentMethod {
	return p.paymentMethod
}

// IsPaid reports whether the delivery has been paid for.
func (p *Parcel) IsPaid() bool {
	return p.isPaid
}

// Description returns the free-form content notes.
func (p *Parcel) Description() string {
	return p.description
}

// Photos returns the photo references attached at creation.
func (p *Parcel) Photos() []string {
	return p.photos
}

// DeliveryProof returns the proof reference, empty if not delivered.
func (p *Parcel) DeliveryProof() string {
	return p.deliveryProof
}

// Rating returns the post-delivery rating, nil if not rated.
func (p *Parcel) Rating() *int {
	return p.rating
}

// Review returns the post-delivery review text.
func (p *Parcel) Review() string {
	return p.review
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Version returns the optimistic concurrency counter the persistence layer
// checks on every update.
func (p *Parcel) Version() int {
	return p.version
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	p.recipientName = name
	return nil
}

func (p *Parcel) setRecipientPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("recipientPhone")
	}
	p.recipientPhone = phone
	return nil
}

func (p *Parcel) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%s is not greater than 0", weight.String()))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Parcel) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.paymentMethod = method
	return nil
}

// Package parcel contains the parcel aggregate and its satellites: the
// lifecycle Status state machine, the TrackingID value object with its
// derived QR digest, the immutable audit Event, and the actor role and
// payment method enumerations.
//
// The aggregate root is Parcel. Status changes go through
// Parcel.ChangeStatus, which enforces the transition rules; every applied
// change is paired with an Event appended to the parcel's audit trail by
// the application layer.
package parcel

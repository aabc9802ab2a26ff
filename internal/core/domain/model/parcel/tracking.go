package parcel

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// trackingIDPrefix is the fixed, human-recognizable prefix of every
// tracking identifier.
const trackingIDPrefix = "ADR"

// trackingSuffixLength is the number of random characters appended after the
// millisecond timestamp. 36^8 possibilities make collisions within the same
// millisecond vanishingly unlikely even under concurrent generation.
const trackingSuffixLength = 8

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not created
// through NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("TrackingID must be created via NewTrackingID or TrackingIDFromString")

// TrackingID is the human-shareable unique identifier of a parcel, of the
// form "ADR-<unix-milliseconds>-<random suffix>". It is immutable once
// minted and doubles as the input of the QR verification hash.
type TrackingID struct {
	value string

	guard guard.ConstructorGuard
}

// NewTrackingID mints a fresh tracking identifier. The monotonic time
// component keeps identifiers roughly sortable; the crypto-random suffix
// guarantees uniqueness across concurrent calls. Generation cannot fail.
func NewTrackingID() TrackingID {
	suffix := make([]byte, trackingSuffixLength)
	rand.Read(suffix)
	for i, b := range suffix {
		suffix[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}

	return TrackingID{
		value: fmt.Sprintf("%s-%d-%s", trackingIDPrefix, time.Now().UnixMilli(), suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingIDFromString wraps an existing identifier, e.g. when restoring a
// parcel from persistence. The value must be non-empty.
func TrackingIDFromString(s string) (TrackingID, error) {
	if s == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}

	return TrackingID{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the identifier value.
func (t TrackingID) String() string {
	return t.value
}

// QRHash computes the deterministic verification digest embedded in the
// parcel's QR code: the lowercase hex SHA-256 of the identifier. The same
// tracking id always yields the same hash.
func (t TrackingID) QRHash() string {
	sum := sha256.Sum256([]byte(t.value))
	return hex.EncodeToString(sum[:])
}

// IsEqual compares two tracking ids by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingIDIsNotConstructed for a zero-value TrackingID.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

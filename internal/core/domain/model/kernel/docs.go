// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: fixed-point monetary amount with two fraction digits
//
// Both types are immutable, validated at construction, and safe for
// concurrent use. Zero values are invalid and fail Validate, which keeps
// improperly constructed identities and amounts out of aggregates.
package kernel

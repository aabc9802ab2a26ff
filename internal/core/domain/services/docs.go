// Package services provides domain services that work across multiple
// domain entities of the tracking system.
//
// The package includes:
//   - TrailReplayer: reconstructs a parcel's status from its audit trail
//     and checks the trail against the stored state
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root.
package services

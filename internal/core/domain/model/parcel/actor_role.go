package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// ActorRole identifies who performed a status change: the sending customer,
// a pickup/dropoff partner, a driver, sorting personnel, an administrator,
// or an unauthenticated guest.
type ActorRole int

const (
	RoleUnknown ActorRole = iota
	RoleCustomer
	RolePartner
	RoleDriver
	RolePersonnel
	RoleAdmin
	RoleGuest
)

func getActorRoleStrings() map[ActorRole]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[ActorRole]string{
		RoleCustomer:  "customer",
		RolePartner:   "partner",
		RoleDriver:    "driver",
		RolePersonnel: "personnel",
		RoleAdmin:     "admin",
		RoleGuest:     "guest",
	}
}

// ActorRoleFromString parses the wire representation of a role.
func ActorRoleFromString(s string) (ActorRole, error) {
	for role, str := range getActorRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("actorRole",
		fmt.Errorf("%q is not a valid actor role", s))
}

// Validate checks if the ActorRole is one of the defined roles.
func (r ActorRole) Validate() error {
	if _, ok := getActorRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actorRole",
			fmt.Errorf("%d is not a valid actor role", r))
	}
	return nil
}

// String returns the wire name of the role.
func (r ActorRole) String() string {
	if str, ok := getActorRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

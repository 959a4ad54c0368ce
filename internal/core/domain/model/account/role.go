package account

import (
	"fmt"

	"wastehaul/internal/pkg/errs"
)

// Role is the global role tag of an account. It is assigned at creation and
// never changes afterwards; organization-level rights come from memberships,
// not from this tag.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleRequester places pickup orders.
	RoleRequester

	// RoleProperty works for a property management company.
	RoleProperty

	// RoleTransport works for a transport company.
	RoleTransport

	// RoleRecycling works for a recycling/disposal station.
	RoleRecycling

	// RoleAdministrator is a system administrator with unrestricted visibility.
	RoleAdministrator
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		RoleRequester:     "requester",
		RoleProperty:      "property",
		RoleTransport:     "transport",
		RoleRecycling:     "recycling",
		RoleAdministrator: "administrator",
	}
}

// String returns the role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdministrator {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

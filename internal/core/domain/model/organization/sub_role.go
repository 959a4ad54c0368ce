package organization

import (
	"fmt"

	"wastehaul/internal/pkg/errs"
)

// SubRole is the per-organization role of a non-primary member. Which values
// are legal depends on the organization kind; ValidateFor enforces that
// tagging at write time so no duck-typed role strings leak into the model.
type SubRole int

const (
	// SubRoleNone marks a homogeneous member with no specialized role.
	// It is the only sub-role valid for property organizations.
	SubRoleNone SubRole = iota

	// SubRoleDispatcher claims dispatched orders and assigns drivers.
	// Valid for transport organizations only.
	SubRoleDispatcher

	// SubRoleDriver performs pickup and disposal legs of an order.
	// Valid for transport organizations only.
	SubRoleDriver

	// SubRoleWeigher performs the weigh-in at a recycling station.
	// Valid for recycling organizations only.
	SubRoleWeigher
)

func subRoleStrings() map[SubRole]string {
	return map[SubRole]string{
		SubRoleNone:       "none",
		SubRoleDispatcher: "dispatcher",
		SubRoleDriver:     "driver",
		SubRoleWeigher:    "weigher",
	}
}

// String returns the sub-role name, or "unknown" for invalid values.
func (s SubRole) String() string {
	if str, ok := subRoleStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateFor checks the sub-role against the organization kind's enumeration.
func (s SubRole) ValidateFor(kind Kind) error {
	valid := map[Kind][]SubRole{
		KindProperty:  {SubRoleNone},
		KindTransport: {SubRoleDispatcher, SubRoleDriver},
		KindRecycling: {SubRoleNone, SubRoleWeigher},
	}

	for _, allowed := range valid[kind] {
		if s == allowed {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("sub-role",
		fmt.Errorf("%s is not a valid sub-role for a %s organization", s, kind))
}

package vehicle

import (
	"fmt"

	"wastehaul/internal/pkg/errs"
)

// Status is the operational state of a vehicle. It flips between Available
// and InUse only as a side effect of the order workflow: a vehicle becomes
// InUse when its assigned driver departs for pickup and Available again when
// the load arrives at the disposal station. Maintenance and OutOfService
// are set by fleet administration, which is outside the order workflow.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the vehicle can be assigned to an order.
	Available

	// InUse means an assigned driver has departed with the vehicle.
	InUse

	// Maintenance means the vehicle is being serviced.
	Maintenance

	// OutOfService means the vehicle is decommissioned.
	OutOfService
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Available:     "available",
		InUse:         "in_use",
		Maintenance:   "maintenance",
		OutOfService:  "out_of_service",
	}
}

// String returns the status name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > OutOfService {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

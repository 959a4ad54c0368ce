package order

import (
	"fmt"

	"wastehaul/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup order.
//
// The happy path walks the statuses in declaration order:
//
//	Pending → Dispatched → Assigned → EnRouteToPickup → ArrivedAtPickup
//	  → EnRouteToDisposal → ArrivedAtDisposal → Weighed
//	  → {Completed | CompletedWithAdjustment}
//
// Cancelled is reachable from any state before Weighed. The legal
// transitions, their authorization predicates, and their evidence
// requirements are data in transition.go, not scattered conditionals.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status: the order awaits dispatch to a
	// property company and a recycling station.
	Pending

	// Dispatched means a property company and recycling station are
	// attached. Entered automatically by dispatch assignment, never by a
	// user action.
	Dispatched

	// Assigned means a transport dispatcher claimed the order for their
	// organization.
	Assigned

	// EnRouteToPickup means the assigned driver departed for the pickup site.
	EnRouteToPickup

	// ArrivedAtPickup means the driver reached the site and documented it.
	ArrivedAtPickup

	// EnRouteToDisposal means the loaded vehicle departed for the
	// recycling station.
	EnRouteToDisposal

	// ArrivedAtDisposal means the load reached the recycling station.
	ArrivedAtDisposal

	// Weighed means the station recorded the actual weight/volume; the
	// order awaits settlement.
	Weighed

	// Completed is terminal: the final charge did not exceed the estimate.
	Completed

	// CompletedWithAdjustment is terminal: the final charge exceeded the
	// estimate and an additional-charge instruction was emitted.
	CompletedWithAdjustment

	// Cancelled is terminal: the order was withdrawn before settlement.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "unknown",
		Pending:                 "pending",
		Dispatched:              "dispatched",
		Assigned:                "assigned",
		EnRouteToPickup:         "en_route_to_pickup",
		ArrivedAtPickup:         "arrived_at_pickup",
		EnRouteToDisposal:       "en_route_to_disposal",
		ArrivedAtDisposal:       "arrived_at_disposal",
		Weighed:                 "weighed",
		Completed:               "completed",
		CompletedWithAdjustment: "completed_with_adjustment",
		Cancelled:               "cancelled",
	}
}

// String returns the snake_case status name used in persistence and APIs.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString maps the wire name of a status back to its value.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the lifecycle has finished. Terminal orders are
// immutable.
func (s Status) IsTerminal() bool {
	return s == Completed || s == CompletedWithAdjustment || s == Cancelled
}

// IsSettlementLocked reports whether cancellation is no longer possible:
// from Weighed onward the order belongs to the settlement engine and any
// cancellation attempt fails as already terminal.
func (s Status) IsSettlementLocked() bool {
	return s == Weighed || s.IsTerminal()
}

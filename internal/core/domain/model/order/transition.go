package order

import (
	"wastehaul/internal/core/domain/model/identity"
	"wastehaul/internal/pkg/errs"
)

// Rule describes one edge of the transition graph: the target status, whether
// the transition demands photo evidence, and who may trigger it. The whole
// legality table of the workflow is the data below; AttemptTransition and the
// intent methods consult it instead of hand-written status comparisons.
type Rule struct {
	To               Status
	RequiresEvidence bool
	Authorize        func(o *Order, actor identity.Actor) error
}

// transitionTable maps each status to its direct successors. Cancellation is
// not listed here: it is reachable from every status for which
// IsSettlementLocked is false and carries its own authorization rule (see
// Cancel).
func transitionTable() map[Status][]Rule {
	return map[Status][]Rule{
		Pending: {
			{To: Dispatched, Authorize: authorizeSystem},
		},
		Dispatched: {
			{To: Assigned, Authorize: authorizeClaimingDispatcher},
		},
		Assigned: {
			{To: EnRouteToPickup, Authorize: authorizeAssignedDriver},
		},
		EnRouteToPickup: {
			{To: ArrivedAtPickup, RequiresEvidence: true, Authorize: authorizeAssignedDriver},
		},
		ArrivedAtPickup: {
			{To: EnRouteToDisposal, RequiresEvidence: true, Authorize: authorizeAssignedDriver},
		},
		EnRouteToDisposal: {
			{To: ArrivedAtDisposal, Authorize: authorizeAssignedDriver},
		},
		ArrivedAtDisposal: {
			{To: Weighed, Authorize: authorizeWeighStaff},
		},
		Weighed: {
			{To: Completed, Authorize: authorizeSystem},
			{To: CompletedWithAdjustment, Authorize: authorizeSystem},
		},
	}
}

// ruleFor returns the rule for the from→to edge, if the edge exists.
func ruleFor(from, to Status) (Rule, bool) {
	for _, rule := range transitionTable()[from] {
		if rule.To == to {
			return rule, true
		}
	}
	return Rule{}, false
}

// SuccessorsOf returns the direct successors of a status in the transition
// graph, excluding cancellation.
func SuccessorsOf(from Status) []Status {
	rules := transitionTable()[from]
	out := make([]Status, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule.To)
	}
	return out
}

// authorizeSystem guards transitions that only the system applies: the
// automatic pending→dispatched step and the settlement finalization. No
// acting identity, administrator included, may trigger them directly.
func authorizeSystem(_ *Order, _ identity.Actor) error {
	return errs.NewUnauthorizedError("system transition")
}

// authorizeClaimingDispatcher requires the actor to hold dispatcher rights in
// the order's transport organization. Claim establishes that organization
// atomically with the transition; a bare AttemptTransition into Assigned is
// only legal once the organization is recorded.
func authorizeClaimingDispatcher(o *Order, actor identity.Actor) error {
	if o.transportOrgID == nil || !actor.IsDispatcherOf(*o.transportOrgID) {
		return errs.NewUnauthorizedError("claim order")
	}
	return nil
}

// authorizeAssignedDriver requires the actor to be the driver assigned to
// this order.
func authorizeAssignedDriver(o *Order, actor identity.Actor) error {
	if o.driverID == nil || !o.driverID.IsEqual(actor.AccountID()) {
		return errs.NewUnauthorizedError("driver transition")
	}
	return nil
}

// authorizeWeighStaff requires weigh-in rights in the order's assigned
// recycling organization.
func authorizeWeighStaff(o *Order, actor identity.Actor) error {
	if o.recyclingOrgID == nil || !actor.IsWeigherOf(*o.recyclingOrgID) {
		return errs.NewUnauthorizedError("weigh order")
	}
	return nil
}

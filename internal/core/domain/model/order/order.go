package order

import (
	"errors"
	"fmt"
	"time"

	"wastehaul/internal/core/domain/model/identity"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAddressIsRequired is returned for an empty pickup address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("pickup address")
)

// Order is the aggregate root of the waste-pickup workflow. It walks the
// status graph in transition.go, accumulates company/driver/vehicle
// assignments and photo evidence along the way, and ends in a terminal
// status after settlement or cancellation.
//
// Invariants:
//   - status only advances through the transition table
//   - an order past Pending carries a property and a recycling assignment
//   - a transport assignment appears no earlier than Assigned and a driver
//     no later than the transition into EnRouteToPickup
//   - terminal orders are immutable
//
// The version field is the optimistic-concurrency token: repositories must
// include it in the update predicate so a stale write fails with
// ConcurrentModification instead of clobbering a concurrent transition.
type Order struct {
	id             kernel.UUID
	requesterID    kernel.UUID
	address        string
	communityID    *kernel.UUID
	wasteType      WasteType
	declaredVolume int
	remarks        string

	estimatedCharge kernel.Money
	actualVolume    *int
	finalCharge     *kernel.Money

	propertyOrgID  *kernel.UUID
	recyclingOrgID *kernel.UUID
	transportOrgID *kernel.UUID
	driverID       *kernel.UUID
	vehicleID      *kernel.UUID
	excludedOrgIDs []kernel.UUID

	evidence []Evidence

	departureConfirmedBy *kernel.UUID
	departureConfirmedAt *time.Time

	status    Status
	version   int64
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order for the given requester. The estimated
// charge is computed by the settlement engine from the declared waste type
// and volume and collected at creation time; the community link may be nil
// when the address matches no known community.
func NewOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	address string,
	communityID *kernel.UUID,
	wasteType WasteType,
	declaredVolume int,
	estimatedCharge kernel.Money,
	remarks string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		remarks:   remarks,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setAddress(address),
		o.setCommunityID(communityID),
		o.setWasteType(wasteType),
		o.setDeclaredVolume(declaredVolume),
	); err != nil {
		return nil, err
	}
	o.estimatedCharge = estimatedCharge

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// assignments, evidence, and version token. Assignment consistency against
// the status is re-validated so corrupt rows never become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	address string,
	communityID *kernel.UUID,
	wasteType WasteType,
	declaredVolume int,
	estimatedCharge kernel.Money,
	remarks string,
	status Status,
	propertyOrgID, recyclingOrgID, transportOrgID, driverID, vehicleID *kernel.UUID,
	excludedOrgIDs []kernel.UUID,
	evidence []Evidence,
	actualVolume *int,
	finalCharge *kernel.Money,
	departureConfirmedBy *kernel.UUID,
	departureConfirmedAt *time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, requesterID, address, communityID, wasteType, declaredVolume, estimatedCharge, remarks, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.propertyOrgID = propertyOrgID
	o.recyclingOrgID = recyclingOrgID
	o.transportOrgID = transportOrgID
	o.driverID = driverID
	o.vehicleID = vehicleID
	o.excludedOrgIDs = excludedOrgIDs
	o.evidence = evidence
	o.actualVolume = actualVolume
	o.finalCharge = finalCharge
	o.departureConfirmedBy = departureConfirmedBy
	o.departureConfirmedAt = departureConfirmedAt
	o.version = version
	o.updatedAt = updatedAt

	if err = o.validateAssignments(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// RequesterID returns the account that placed the order.
func (o *Order) RequesterID() kernel.UUID { return o.requesterID }

// Address returns the pickup address.
func (o *Order) Address() string { return o.address }

// CommunityID returns the resolved community, or nil when the address
// matched none.
func (o *Order) CommunityID() *kernel.UUID { return o.communityID }

// WasteType returns the declared waste classification.
func (o *Order) WasteType() WasteType { return o.wasteType }

// DeclaredVolume returns the declared volume in whole cubic meters.
func (o *Order) DeclaredVolume() int { return o.declaredVolume }

// Remarks returns the requester's free-text remarks.
func (o *Order) Remarks() string { return o.remarks }

// EstimatedCharge returns the amount collected at creation.
func (o *Order) EstimatedCharge() kernel.Money { return o.estimatedCharge }

// ActualVolume returns the weigh-in volume, or nil before Weighed.
func (o *Order) ActualVolume() *int { return o.actualVolume }

// FinalCharge returns the settled charge, or nil before settlement.
func (o *Order) FinalCharge() *kernel.Money { return o.finalCharge }

// PropertyOrgID returns the assigned property company, or nil while Pending.
func (o *Order) PropertyOrgID() *kernel.UUID { return o.propertyOrgID }

// RecyclingOrgID returns the assigned recycling station, or nil while Pending.
func (o *Order) RecyclingOrgID() *kernel.UUID { return o.recyclingOrgID }

// TransportOrgID returns the claiming transport company, or nil before Assigned.
func (o *Order) TransportOrgID() *kernel.UUID { return o.transportOrgID }

// DriverID returns the assigned driver account, or nil before crew assignment.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// VehicleID returns the assigned vehicle, or nil before crew assignment.
func (o *Order) VehicleID() *kernel.UUID { return o.vehicleID }

// ExcludedOrgIDs returns the organizations barred from this order's candidate
// pools after a dispatch rejection.
func (o *Order) ExcludedOrgIDs() []kernel.UUID { return o.excludedOrgIDs }

// Evidence returns the attached photo evidence in attachment order.
func (o *Order) Evidence() []Evidence { return o.evidence }

// DepartureConfirmedBy returns the property admin who confirmed departure,
// or nil when unconfirmed.
func (o *Order) DepartureConfirmedBy() *kernel.UUID { return o.departureConfirmedBy }

// DepartureConfirmedAt returns the departure confirmation time, or nil.
func (o *Order) DepartureConfirmedAt() *time.Time { return o.departureConfirmedAt }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Version returns the optimistic-concurrency token.
func (o *Order) Version() int64 { return o.version }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsExcluded reports whether the organization previously rejected this order
// and is barred from its candidate pools.
func (o *Order) IsExcluded(orgID kernel.UUID) bool {
	for _, id := range o.excludedOrgIDs {
		if id.IsEqual(orgID) {
			return true
		}
	}
	return false
}

// AttemptTransition moves the order to target on behalf of actor, consulting
// the transition table. Preconditions, in order: the actor must be authorized
// for the specific edge, the target must be a direct successor of the current
// status, and evidence-bearing edges need at least one photo reference.
// Attempts on a terminal order fail with AlreadyTerminal. On failure no
// mutation is visible.
//
// A target of Cancelled is routed through Cancel, which carries its own
// authorization rule. Targets with dedicated flows are not reachable here:
// Weighed must go through Weigh, which records the measured volume, and the
// system edges (Dispatched, the two completions) have no acting identity.
func (o *Order) AttemptTransition(actor identity.Actor, target Status, photoRefs []string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if target == Cancelled {
		return o.Cancel(actor, now)
	}

	rule, ok := ruleFor(o.status, target)
	if !ok {
		if o.status.IsTerminal() {
			return errs.NewAlreadyTerminalError(o.status.String())
		}
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	switch target {
	case Dispatched, Completed, CompletedWithAdjustment:
		return errs.NewUnauthorizedError("system transition")
	}

	if !actor.IsAdministrator() {
		if err := rule.Authorize(o, actor); err != nil {
			return err
		}
	}

	if target == Weighed {
		return errs.NewValueIsRequiredError("actual volume")
	}

	if rule.RequiresEvidence && len(photoRefs) == 0 {
		return errs.NewEvidenceRequiredError(fmt.Sprintf("%s -> %s", o.status, target))
	}

	attached := make([]Evidence, 0, len(photoRefs))
	for _, ref := range photoRefs {
		ev, err := NewEvidence(target, ref, now)
		if err != nil {
			return err
		}
		attached = append(attached, ev)
	}

	o.status = target
	o.evidence = append(o.evidence, attached...)
	o.touch(now)
	return nil
}

// AssignCompanies is the automatic pending→dispatched step: dispatch
// assignment attaches one property company and one recycling station.
// Only the dispatch mechanism calls it; there is no acting identity.
func (o *Order) AssignCompanies(propertyOrgID, recyclingOrgID kernel.UUID, now time.Time) error {
	if err := o.ensureSuccessor(Dispatched); err != nil {
		return err
	}
	if err := errors.Join(propertyOrgID.Validate(), recyclingOrgID.Validate()); err != nil {
		return err
	}

	o.propertyOrgID = &propertyOrgID
	o.recyclingOrgID = &recyclingOrgID
	o.status = Dispatched
	o.touch(now)
	return nil
}

// Claim records the claiming dispatcher's transport organization and moves
// the order to Assigned. Exactly one dispatcher wins a claim; the repository
// version check serializes concurrent claims.
func (o *Order) Claim(actor identity.Actor, transportOrgID kernel.UUID, now time.Time) error {
	if err := o.ensureSuccessor(Assigned); err != nil {
		return err
	}
	if !actor.IsAdministrator() && !actor.IsDispatcherOf(transportOrgID) {
		return errs.NewUnauthorizedError("claim order")
	}
	if o.IsExcluded(transportOrgID) {
		return errs.NewUnauthorizedError("claim order: organization rejected this order")
	}

	o.transportOrgID = &transportOrgID
	o.status = Assigned
	o.touch(now)
	return nil
}

// Reject returns a dispatched order to Pending on behalf of a dispatcher who
// declines it. The rejecting organization is excluded from the order's future
// candidate pools and the company assignments are cleared for re-dispatch.
func (o *Order) Reject(actor identity.Actor, transportOrgID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.status.String())
	}
	if o.status != Dispatched {
		return errs.NewInvalidTransitionError(o.status.String(), Pending.String())
	}
	if !actor.IsAdministrator() && !actor.IsDispatcherOf(transportOrgID) {
		return errs.NewUnauthorizedError("reject dispatch")
	}

	if !o.IsExcluded(transportOrgID) {
		o.excludedOrgIDs = append(o.excludedOrgIDs, transportOrgID)
	}
	o.propertyOrgID = nil
	o.recyclingOrgID = nil
	o.status = Pending
	o.touch(now)
	return nil
}

// AssignCrew records the driver and vehicle chosen by the dispatcher. The
// order must be Assigned and not yet under way; the vehicle keeps its
// Available status until the driver actually departs.
func (o *Order) AssignCrew(driverID, vehicleID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.status.String())
	}
	if o.status != Assigned {
		return errs.NewInvalidTransitionError(o.status.String(), "crew assignment")
	}
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	o.driverID = &driverID
	o.vehicleID = &vehicleID
	o.touch(now)
	return nil
}

// Weigh records the actual volume measured at the recycling station and
// moves the order to Weighed. Settlement finalizes it afterwards.
func (o *Order) Weigh(actor identity.Actor, actualVolume int, now time.Time) error {
	rule, ok := ruleFor(o.status, Weighed)
	if !ok {
		if o.status.IsTerminal() {
			return errs.NewAlreadyTerminalError(o.status.String())
		}
		return errs.NewInvalidTransitionError(o.status.String(), Weighed.String())
	}
	if !actor.IsAdministrator() {
		if err := rule.Authorize(o, actor); err != nil {
			return err
		}
	}
	if actualVolume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual volume",
			fmt.Errorf("%d is not greater than 0", actualVolume))
	}

	o.actualVolume = &actualVolume
	o.status = Weighed
	o.touch(now)
	return nil
}

// Finalize is the settlement engine's terminal step: it records the final
// charge and closes the order as Completed or CompletedWithAdjustment.
// A second call fails with AlreadyTerminal.
func (o *Order) Finalize(finalCharge kernel.Money, adjusted bool, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.status.String())
	}

	target := Completed
	if adjusted {
		target = CompletedWithAdjustment
	}
	if _, ok := ruleFor(o.status, target); !ok {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	o.finalCharge = &finalCharge
	o.status = target
	o.touch(now)
	return nil
}

// Cancel withdraws the order. The requester may cancel before a transport
// company claims it; the primary admin of the assigned property or transport
// organization may cancel any time before settlement. From Weighed onward
// the order is settlement-locked and cancellation fails as already terminal.
func (o *Order) Cancel(actor identity.Actor, now time.Time) error {
	if o.status.IsSettlementLocked() {
		return errs.NewAlreadyTerminalError(o.status.String())
	}
	if !o.canCancel(actor) {
		return errs.NewUnauthorizedError("cancel order")
	}

	o.status = Cancelled
	o.touch(now)
	return nil
}

// ConfirmDeparture records a property-side confirmation that the waste left
// the community. It never changes the status; authorization against the
// community's managing organization happens in the command handler, which
// holds the community record.
func (o *Order) ConfirmDeparture(confirmedBy kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.status.String())
	}
	if err := confirmedBy.Validate(); err != nil {
		return err
	}

	o.departureConfirmedBy = &confirmedBy
	confirmedAt := now
	o.departureConfirmedAt = &confirmedAt
	o.touch(now)
	return nil
}

func (o *Order) canCancel(actor identity.Actor) bool {
	if actor.IsAdministrator() {
		return true
	}
	if actor.AccountID().IsEqual(o.requesterID) {
		return o.status == Pending || o.status == Dispatched
	}
	if o.propertyOrgID != nil && actor.IsPrimaryOf(*o.propertyOrgID) {
		return true
	}
	if o.transportOrgID != nil && actor.IsPrimaryOf(*o.transportOrgID) {
		return true
	}
	return false
}

// ensureSuccessor verifies target is a direct successor of the current
// status, mapping terminal states to AlreadyTerminal.
func (o *Order) ensureSuccessor(target Status) error {
	if _, ok := ruleFor(o.status, target); ok {
		return nil
	}
	if o.status.IsTerminal() {
		return errs.NewAlreadyTerminalError(o.status.String())
	}
	return errs.NewInvalidTransitionError(o.status.String(), target.String())
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func (o *Order) validateAssignments() error {
	if o.status == Pending || o.status == Cancelled {
		return nil
	}

	if o.propertyOrgID == nil || o.recyclingOrgID == nil {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must carry property and recycling assignments", o.status))
	}
	if o.status == Dispatched {
		return nil
	}

	if o.transportOrgID == nil {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must carry a transport assignment", o.status))
	}
	if o.status == Assigned {
		return nil
	}

	if o.driverID == nil || o.vehicleID == nil {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must carry a driver and vehicle", o.status))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.requesterID = id
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setCommunityID(communityID *kernel.UUID) error {
	if communityID == nil {
		return nil
	}
	if err := communityID.Validate(); err != nil {
		return err
	}
	linked := *communityID
	o.communityID = &linked
	return nil
}

func (o *Order) setWasteType(wasteType WasteType) error {
	if err := wasteType.Validate(); err != nil {
		return err
	}
	o.wasteType = wasteType
	return nil
}

func (o *Order) setDeclaredVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("declared volume",
			fmt.Errorf("%d is not greater than 0", volume))
	}
	o.declaredVolume = volume
	return nil
}

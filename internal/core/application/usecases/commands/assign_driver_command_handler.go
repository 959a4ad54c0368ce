package commands

import (
	"context"
	"time"

	"wastehaul/internal/pkg/errs"
)

// AssignDriverCommandHandler handles crew assignment on a claimed order.
// The driver and vehicle must both belong to the claiming organization, and
// the vehicle must be available. Availability is only checked here; the
// vehicle flips to in-use when the driver departs, not at assignment time,
// so an idle crew never locks a vehicle.
type AssignDriverCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for crew assignment.
func NewAssignDriverCommandHandler(uowFactory FleetUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the crew assignment command. Fails with ResourceBusy when
// the vehicle is not available and Unauthorized when the driver or vehicle
// is outside the dispatcher's organization.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := resolveActor(ctx, uow.AccountRepository(), uow.OrganizationRepository(), cmd.ActorID())
	if err != nil {
		return err
	}

	ordersRepo := uow.OrderRepository()
	claimedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if claimedOrder.TransportOrgID() == nil {
		return errs.NewInvalidTransitionError(claimedOrder.Status().String(), "crew assignment")
	}
	transportOrgID := *claimedOrder.TransportOrgID()

	if !actor.IsAdministrator() && !actor.IsDispatcherOf(transportOrgID) {
		return errs.NewUnauthorizedError("assign driver")
	}

	driver, err := resolveActor(ctx, uow.AccountRepository(), uow.OrganizationRepository(), cmd.DriverID())
	if err != nil {
		return err
	}
	if !driver.IsDriverIn(transportOrgID) {
		return errs.NewUnauthorizedError("assign driver: driver is not in the claiming organization")
	}

	vehiclesRepo := uow.VehicleRepository()
	assignedVehicle, err := vehiclesRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if !assignedVehicle.BelongsTo(transportOrgID) {
		return errs.NewUnauthorizedError("assign driver: vehicle is not in the claiming organization")
	}
	if !assignedVehicle.IsAvailable() {
		return errs.NewResourceBusyError("vehicle", assignedVehicle.ID().String())
	}

	if err = claimedOrder.AssignCrew(cmd.DriverID(), cmd.VehicleID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, claimedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

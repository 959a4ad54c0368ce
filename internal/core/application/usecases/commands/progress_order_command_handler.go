package commands

import (
	"context"
	"time"

	"wastehaul/internal/core/domain/model/order"
)

// ProgressOrderCommandHandler handles the driver's trip transitions.
// The transition itself is decided by the order aggregate; this handler adds
// the fleet side effects: the vehicle flips to in-use when the driver
// departs for pickup and is released on arrival at the disposal station.
type ProgressOrderCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewProgressOrderCommandHandler creates a handler for trip progress.
func NewProgressOrderCommandHandler(uowFactory FleetUoWFactory) ProgressOrderCommandHandler {
	return ProgressOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress command. Order and vehicle are committed in
// one transaction so the fleet state never disagrees with the trip state.
func (h ProgressOrderCommandHandler) Handle(ctx context.Context, cmd ProgressOrderCommand) error {
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
	progressedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = progressedOrder.AttemptTransition(actor, cmd.Target(), cmd.PhotoRefs(), time.Now().UTC()); err != nil {
		return err
	}

	if err = h.applyVehicleSideEffect(ctx, uow, progressedOrder, cmd.Target()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, progressedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h ProgressOrderCommandHandler) applyVehicleSideEffect(
	ctx context.Context,
	uow FleetUoW,
	progressedOrder *order.Order,
	target order.Status,
) error {
	if target != order.EnRouteToPickup && target != order.ArrivedAtDisposal {
		return nil
	}
	if progressedOrder.VehicleID() == nil {
		return nil
	}

	vehiclesRepo := uow.VehicleRepository()
	assignedVehicle, err := vehiclesRepo.Get(ctx, *progressedOrder.VehicleID())
	if err != nil {
		return err
	}

	if target == order.EnRouteToPickup {
		err = assignedVehicle.MarkInUse()
	} else {
		err = assignedVehicle.Release()
	}
	if err != nil {
		return err
	}

	return vehiclesRepo.Update(ctx, assignedVehicle)
}

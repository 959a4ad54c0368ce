package commands

import (
	"context"
	"time"
)

// WeighOrderCommandHandler handles the weigh-in at the recycling station.
type WeighOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewWeighOrderCommandHandler creates a handler for weigh-in operations.
func NewWeighOrderCommandHandler(uowFactory OrderUoWFactory) WeighOrderCommandHandler {
	return WeighOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weigh command. Only weigh staff of the assigned
// recycling station may record the measurement, and only once the load has
// arrived at the station.
func (h WeighOrderCommandHandler) Handle(ctx context.Context, cmd WeighOrderCommand) error {
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
	weighedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = weighedOrder.Weigh(actor, cmd.ActualVolume(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, weighedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

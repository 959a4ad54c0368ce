package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles order withdrawal. The order aggregate
// decides who may cancel at the current status; from weigh-in onward the
// order is settlement-locked and cancellation is refused.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"time"
)

// RejectDispatchCommandHandler handles a dispatcher declining a dispatched
// order. The rejecting organization never sees the order again; a later
// dispatch pass assigns fresh companies.
type RejectDispatchCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectDispatchCommandHandler creates a handler for dispatch rejections.
func NewRejectDispatchCommandHandler(uowFactory OrderUoWFactory) RejectDispatchCommandHandler {
	return RejectDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h RejectDispatchCommandHandler) Handle(ctx context.Context, cmd RejectDispatchCommand) error {
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
	rejectedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = rejectedOrder.Reject(actor, cmd.TransportOrgID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, rejectedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

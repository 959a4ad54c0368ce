package commands

import (
	"context"
	"time"
)

// ClaimOrderCommandHandler handles a dispatcher claiming a dispatched order.
// The optimistic version check in the order repository serializes concurrent
// claims so only the first commit wins.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command. Fails with Unauthorized when the actor
// has no dispatch rights in the claiming organization, InvalidTransition
// when the order is not dispatched, and ConcurrentModification when another
// dispatcher committed first.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	if err = claimedOrder.Claim(actor, cmd.TransportOrgID(), time.Now().UTC()); err != nil {
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

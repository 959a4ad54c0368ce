package commands

import (
	"context"
	"errors"
	"time"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/services"
	"wastehaul/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the pickup address to a community, prices the declared load, and
// registers the order in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settlement services.Settlement
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and the
// settlement service for up-front pricing.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, settlement services.Settlement) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle processes the order creation command. The requester must be an
// active account; the address is matched against known communities, and an
// unmatched address simply leaves the order without a community link.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	estimate, err := h.settlement.EstimateCharge(cmd.WasteType(), cmd.DeclaredVolume())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = resolveActor(ctx, uow.AccountRepository(), uow.OrganizationRepository(), cmd.RequesterID()); err != nil {
		return err
	}

	var communityID *kernel.UUID
	community, err := uow.CommunityRepository().FindByAddress(ctx, cmd.Address())
	switch {
	case err == nil:
		id := community.ID()
		communityID = &id
	case errors.Is(err, errs.ErrObjectNotFound):
		// no property-side visibility until the address is linked manually
	default:
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RequesterID(),
		cmd.Address(),
		communityID,
		cmd.WasteType(),
		cmd.DeclaredVolume(),
		estimate,
		cmd.Remarks(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

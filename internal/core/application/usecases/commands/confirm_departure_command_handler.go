package commands

import (
	"context"
	"time"

	"wastehaul/internal/core/domain/model/identity"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"
)

// ConfirmDepartureCommandHandler handles property-side departure
// confirmations. The confirming account must belong to the organization
// managing the order's community, scoped to that community for non-primary
// members.
type ConfirmDepartureCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDepartureCommandHandler creates a handler for departure confirmations.
func NewConfirmDepartureCommandHandler(uowFactory OrderUoWFactory) ConfirmDepartureCommandHandler {
	return ConfirmDepartureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. Orders whose address matched no
// community have no property side and cannot be confirmed.
func (h ConfirmDepartureCommandHandler) Handle(ctx context.Context, cmd ConfirmDepartureCommand) error {
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
	confirmedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !actor.IsAdministrator() {
		if err = h.authorize(ctx, uow, actor, confirmedOrder); err != nil {
			return err
		}
	}

	if err = confirmedOrder.ConfirmDeparture(actor.AccountID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, confirmedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h ConfirmDepartureCommandHandler) authorize(
	ctx context.Context,
	uow OrderUoW,
	actor identity.Actor,
	confirmedOrder *order.Order,
) error {
	if confirmedOrder.CommunityID() == nil {
		return errs.NewUnauthorizedError("confirm departure: order has no community")
	}

	community, err := uow.CommunityRepository().Get(ctx, *confirmedOrder.CommunityID())
	if err != nil {
		return err
	}

	for _, m := range actor.MembershipsOfKind(organization.KindProperty) {
		if !community.IsManagedBy(m.OrganizationID()) {
			continue
		}
		if m.IsPrimary() {
			return nil
		}
		if m.CommunityID() != nil && m.CommunityID().IsEqual(community.ID()) {
			return nil
		}
	}

	return errs.NewUnauthorizedError("confirm departure")
}

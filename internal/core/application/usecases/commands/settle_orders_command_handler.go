package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/services"
)

// SettleOrdersCommandHandler finalizes all weighed orders. Each order is
// settled in its own transaction: the final charge and its payment
// instruction commit together, so settlement survives a crash between
// weigh-in and payout and an order is never finalized twice. An order that
// fails to settle is skipped and retried on the next pass; it does not block
// the others.
type SettleOrdersCommandHandler struct {
	uowFactory SettlementUoWFactory
	settlement services.Settlement
}

// NewSettleOrdersCommandHandler creates a handler for the settlement pass.
func NewSettleOrdersCommandHandler(uowFactory SettlementUoWFactory, settlement services.Settlement) SettleOrdersCommandHandler {
	return SettleOrdersCommandHandler{
		uowFactory: uowFactory,
		settlement: settlement,
	}
}

// Handle processes the settlement command. Per-order failures are joined
// into the returned error after every other weighed order has been settled.
func (h SettleOrdersCommandHandler) Handle(ctx context.Context, command SettleOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	weighedOrders, err := h.listWeighed(ctx)
	if err != nil {
		return err
	}

	var settleErrs []error
	for _, weighedOrder := range weighedOrders {
		if err = h.settleOne(ctx, weighedOrder); err != nil {
			settleErrs = append(settleErrs, fmt.Errorf("settle order %s: %w", weighedOrder.ID(), err))
		}
	}

	return errors.Join(settleErrs...)
}

// listWeighed loads the orders awaiting settlement.
func (h SettleOrdersCommandHandler) listWeighed(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	weighedOrders, err := uow.OrderRepository().GetAllInWeighedStatus(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return weighedOrders, nil
}

// settleOne finalizes a single order and records its payment instruction in
// one transaction.
func (h SettleOrdersCommandHandler) settleOne(ctx context.Context, weighedOrder *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	instruction, err := h.settlement.Finalize(weighedOrder, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, weighedOrder); err != nil {
		return err
	}

	// nil when the final charge matched the estimate exactly
	if instruction != nil {
		if err = uow.PaymentOutboxRepository().Add(ctx, instruction); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

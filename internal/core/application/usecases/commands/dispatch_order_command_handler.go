package commands

import (
	"context"
	"errors"
	"time"

	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/core/domain/services"
	"wastehaul/internal/pkg/errs"
)

// ErrNoPendingOrderFound is returned when the dispatch pass finds no order
// waiting for assignment.
var ErrNoPendingOrderFound = errors.New("no pending order found")

// DispatchOrderCommandHandler orchestrates the automatic dispatch pass.
// Finds the oldest pending order, builds the candidate pools of active
// property and recycling organizations, and lets the dispatch policy pick
// one of each.
//
// Example:
//
//	handler := NewDispatchOrderCommandHandler(uowFactory, dispatcher)
//	cmd := NewDispatchOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrderFound):
//	    log.Println("Nothing to dispatch")
//	case errors.Is(err, errs.ErrNoCandidateAvailable):
//	    log.Println("No active companies to assign")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.Dispatcher
}

// NewDispatchOrderCommandHandler creates a handler for the dispatch pass.
func NewDispatchOrderCommandHandler(uowFactory DispatchUoWFactory, dispatcher services.Dispatcher) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the dispatch command. An empty candidate pool surfaces as
// NoCandidateAvailable and leaves the order pending for the next pass.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, command DispatchOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	orgsRepo := uow.OrganizationRepository()

	pendingOrder, err := ordersRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrderFound
	}
	if err != nil {
		return err
	}

	properties, err := orgsRepo.GetAllActiveByKind(ctx, organization.KindProperty)
	if err != nil {
		return err
	}
	recyclers, err := orgsRepo.GetAllActiveByKind(ctx, organization.KindRecycling)
	if err != nil {
		return err
	}

	if err = h.dispatcher.Dispatch(pendingOrder, properties, recyclers, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"time"

	"wastehaul/internal/core/ports"
)

// DeliverPaymentsCommandHandler pushes pending payment instructions to the
// payment collaborator. Delivery is at-least-once: an instruction is marked
// delivered only after the collaborator accepts it, and a collaborator
// outage leaves the remaining instructions pending for the next pass.
type DeliverPaymentsCommandHandler struct {
	uowFactory OutboxUoWFactory
	gateway    ports.PaymentGateway
}

// NewDeliverPaymentsCommandHandler creates a handler for the delivery pass.
func NewDeliverPaymentsCommandHandler(uowFactory OutboxUoWFactory, gateway ports.PaymentGateway) DeliverPaymentsCommandHandler {
	return DeliverPaymentsCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the delivery command. A send failure aborts the pass
// with CollaboratorUnavailable; instructions already acknowledged in this
// pass stay marked delivered.
func (h DeliverPaymentsCommandHandler) Handle(ctx context.Context, command DeliverPaymentsCommand) error {
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

	outboxRepo := uow.PaymentOutboxRepository()
	pending, err := outboxRepo.GetAllPending(ctx)
	if err != nil {
		return err
	}

	for _, instruction := range pending {
		if err = h.gateway.Send(ctx, instruction); err != nil {
			// commit what was already acknowledged before giving up
			if commitErr := uow.Commit(ctx); commitErr != nil {
				return commitErr
			}
			return err
		}

		if err = instruction.MarkDelivered(time.Now().UTC()); err != nil {
			return err
		}
		if err = outboxRepo.Update(ctx, instruction); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

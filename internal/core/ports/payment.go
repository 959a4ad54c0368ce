package ports

import (
	"context"

	"wastehaul/internal/core/domain/model/payment"
)

// PaymentOutboxRepository defines the persistence contract for settlement
// payment instructions. Instructions are written in the transaction that
// finalizes an order and delivered to the collaborator afterwards.
type PaymentOutboxRepository interface {
	// Add persists a new payment instruction.
	Add(ctx context.Context, instruction *payment.Instruction) error

	// Update persists a delivery status change.
	Update(ctx context.Context, instruction *payment.Instruction) error

	// GetAllPending retrieves all instructions awaiting delivery.
	GetAllPending(ctx context.Context) ([]*payment.Instruction, error)
}

// PaymentGateway sends refund and charge instructions to the external
// payment collaborator. Delivery failures surface as CollaboratorUnavailable
// and leave the instruction pending for a later retry.
type PaymentGateway interface {
	Send(ctx context.Context, instruction *payment.Instruction) error
}

package payment

import (
	"errors"
	"time"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

// ErrInstructionIsNotConstructed is returned when an Instruction was not
// created through NewInstruction or RestoreInstruction.
var ErrInstructionIsNotConstructed = errors.New(
	"Instruction must be created via NewInstruction or RestoreInstruction")

// Direction tells the payment collaborator which way money moves.
type Direction string

const (
	// DirectionRefund returns part of the collected estimate to the requester.
	DirectionRefund Direction = "refund"

	// DirectionCharge collects the shortfall after an upward adjustment.
	DirectionCharge Direction = "charge"
)

// Validate returns an error for a direction outside the known set.
func (d Direction) Validate() error {
	switch d {
	case DirectionRefund, DirectionCharge:
		return nil
	}
	return errs.NewValueIsInvalidError("direction")
}

// Status tracks outbox delivery, not money movement.
type Status string

const (
	// StatusPending means the instruction has not yet reached the collaborator.
	StatusPending Status = "pending"

	// StatusDelivered means the collaborator acknowledged the instruction.
	StatusDelivered Status = "delivered"
)

// Validate returns an error for a status outside the known set.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusDelivered:
		return nil
	}
	return errs.NewValueIsInvalidError("status")
}

// Instruction is a settlement payout or collection recorded in the same
// transaction that finalizes an order. A background job delivers pending
// instructions to the payment collaborator and marks them delivered, so a
// collaborator outage delays delivery instead of losing it.
type Instruction struct {
	id          kernel.UUID
	orderID     kernel.UUID
	amount      kernel.Money
	direction   Direction
	status      Status
	createdAt   time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewInstruction creates a pending instruction for an order settlement.
// A zero amount is rejected: settlement skips the instruction entirely when
// the final charge matches the estimate.
func NewInstruction(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	direction Direction,
	now time.Time,
) (*Instruction, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		direction.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, errs.NewValueIsInvalidError("amount")
	}

	return &Instruction{
		id:        id,
		orderID:   orderID,
		amount:    amount,
		direction: direction,
		status:    StatusPending,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreInstruction reconstructs an instruction from persistence.
func RestoreInstruction(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	direction Direction,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Instruction, error) {
	instruction, err := NewInstruction(id, orderID, amount, direction, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	instruction.status = status
	instruction.deliveredAt = deliveredAt
	return instruction, nil
}

// Validate ensures the instruction was created through a constructor.
func (i *Instruction) Validate() error {
	if i == nil {
		return ErrInstructionIsNotConstructed
	}
	return i.guard.Validate(ErrInstructionIsNotConstructed)
}

// ID returns the instruction identifier.
func (i *Instruction) ID() kernel.UUID { return i.id }

// OrderID returns the settled order.
func (i *Instruction) OrderID() kernel.UUID { return i.orderID }

// Amount returns the amount to move.
func (i *Instruction) Amount() kernel.Money { return i.amount }

// Direction returns whether the amount is refunded or collected.
func (i *Instruction) Direction() Direction { return i.direction }

// Status returns the delivery status.
func (i *Instruction) Status() Status { return i.status }

// CreatedAt returns the settlement time.
func (i *Instruction) CreatedAt() time.Time { return i.createdAt }

// DeliveredAt returns the collaborator acknowledgment time, or nil while
// pending.
func (i *Instruction) DeliveredAt() *time.Time { return i.deliveredAt }

// IsPending reports whether the instruction still awaits delivery.
func (i *Instruction) IsPending() bool { return i.status == StatusPending }

// MarkDelivered records the collaborator's acknowledgment. Marking twice is
// an error so the delivery job never double-sends an acknowledged
// instruction.
func (i *Instruction) MarkDelivered(now time.Time) error {
	if i.status == StatusDelivered {
		return errs.NewValueIsInvalidError("status")
	}

	i.status = StatusDelivered
	deliveredAt := now
	i.deliveredAt = &deliveredAt
	return nil
}

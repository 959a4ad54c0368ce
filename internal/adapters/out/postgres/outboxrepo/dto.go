// Package outboxrepo provides data transfer objects and mapping functions
// for the payment instruction outbox. Instructions are written in the
// settlement transaction and drained by the payment delivery job.
package outboxrepo

import (
	"time"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// InstructionDTO represents the database structure for persisting payment
// instructions.
type InstructionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountCents int64     `gorm:"type:bigint;not null"`
	Direction   string    `gorm:"type:varchar(16);not null"`
	Status      string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	DeliveredAt *time.Time
}

// TableName specifies the database table name for payment instructions.
func (InstructionDTO) TableName() string {
	return "payment_instructions"
}

func fromDomain(instruction *payment.Instruction) InstructionDTO {
	return InstructionDTO{
		ID:          instruction.ID().Bytes(),
		OrderID:     instruction.OrderID().Bytes(),
		AmountCents: instruction.Amount().Cents(),
		Direction:   string(instruction.Direction()),
		Status:      string(instruction.Status()),
		CreatedAt:   instruction.CreatedAt(),
		DeliveredAt: instruction.DeliveredAt(),
	}
}

func toDomain(dto InstructionDTO) (*payment.Instruction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return payment.RestoreInstruction(
		id,
		orderID,
		amount,
		payment.Direction(dto.Direction),
		payment.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}

package outboxrepo

import (
	"context"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/payment"
	"wastehaul/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentOutboxRepository implements PaymentOutboxRepository using GORM.
type GormPaymentOutboxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentOutboxRepository creates a new GORM payment outbox repository.
func NewGormPaymentOutboxRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentOutboxRepository {
	return &GormPaymentOutboxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment instruction to the database.
func (r *GormPaymentOutboxRepository) Add(ctx context.Context, instruction *payment.Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(instruction)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(instruction.ID(), instruction)
	return nil
}

// Update saves a delivery status change to the database.
func (r *GormPaymentOutboxRepository) Update(ctx context.Context, instruction *payment.Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(instruction)
	result := r.db.WithContext(ctx).Model(&InstructionDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment instruction", instruction.ID().String())
	}

	r.tracker.TrackAggregate(instruction.ID(), instruction)
	return nil
}

// GetAllPending retrieves all instructions awaiting delivery, oldest first.
func (r *GormPaymentOutboxRepository) GetAllPending(ctx context.Context) ([]*payment.Instruction, error) {
	var dtos []InstructionDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", string(payment.StatusPending)).Error
	if err != nil {
		return nil, err
	}

	instructions := make([]*payment.Instruction, 0, len(dtos))
	for _, dto := range dtos {
		instruction, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		instructions = append(instructions, instruction)
	}

	return instructions, nil
}

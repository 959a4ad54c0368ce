// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(32)"`
	Role   int       `gorm:"type:int;not null"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Role:   int(aggregate.Role()),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Name, dto.Phone, account.Role(dto.Role), dto.Active)
}

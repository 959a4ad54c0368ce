// Package vehiclerepo provides data transfer objects and mapping functions
// for transport fleet persistence.
package vehiclerepo

import (
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransportOrgID uuid.UUID `gorm:"type:uuid;not null;index"`
	PlateNumber    string    `gorm:"type:varchar(32);not null"`
	Status         int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:             aggregate.ID().Bytes(),
		TransportOrgID: aggregate.TransportOrgID().Bytes(),
		PlateNumber:    aggregate.PlateNumber(),
		Status:         int(aggregate.Status()),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	transportOrgID, err := kernel.UUIDFromBytes(dto.TransportOrgID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, transportOrgID, dto.PlateNumber, vehicle.Status(dto.Status))
}

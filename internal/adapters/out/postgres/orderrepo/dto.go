// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and organization assignment. The version
// column carries the optimistic-concurrency token.
type OrderDTO struct {
	ID                   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	RequesterID          uuid.UUID     `gorm:"type:uuid;not null;index"`
	Address              string        `gorm:"type:varchar(512);not null"`
	CommunityID          *uuid.UUID    `gorm:"type:uuid;index"`
	WasteType            string        `gorm:"type:varchar(32);not null"`
	DeclaredVolume       int           `gorm:"type:int;not null"`
	Remarks              string        `gorm:"type:text"`
	EstimatedChargeCents int64         `gorm:"type:bigint;not null"`
	ActualVolume         *int          `gorm:"type:int"`
	FinalChargeCents     *int64        `gorm:"type:bigint"`
	PropertyOrgID        *uuid.UUID    `gorm:"type:uuid;index"`
	RecyclingOrgID       *uuid.UUID    `gorm:"type:uuid;index"`
	TransportOrgID       *uuid.UUID    `gorm:"type:uuid;index"`
	DriverID             *uuid.UUID    `gorm:"type:uuid;index"`
	VehicleID            *uuid.UUID    `gorm:"type:uuid"`
	ExcludedOrgIDs       []uuid.UUID   `gorm:"type:jsonb;serializer:json"`
	Evidence             []EvidenceDTO `gorm:"type:jsonb;serializer:json"`
	DepartureConfirmedBy *uuid.UUID    `gorm:"type:uuid"`
	DepartureConfirmedAt *time.Time
	Status               int       `gorm:"type:int;not null;index"`
	Version              int64     `gorm:"type:bigint;not null"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// EvidenceDTO represents one photo evidence entry inside the order's
// evidence JSON column.
type EvidenceDTO struct {
	Status     int       `json:"status"`
	PhotoRef   string    `json:"photo_ref"`
	RecordedAt time.Time `json:"recorded_at"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	excluded := make([]uuid.UUID, 0, len(aggregate.ExcludedOrgIDs()))
	for _, id := range aggregate.ExcludedOrgIDs() {
		excluded = append(excluded, id.Bytes())
	}

	evidence := make([]EvidenceDTO, 0, len(aggregate.Evidence()))
	for _, ev := range aggregate.Evidence() {
		evidence = append(evidence, EvidenceDTO{
			Status:     int(ev.Status()),
			PhotoRef:   ev.PhotoRef(),
			RecordedAt: ev.RecordedAt(),
		})
	}

	var finalChargeCents *int64
	if charge := aggregate.FinalCharge(); charge != nil {
		cents := charge.Cents()
		finalChargeCents = &cents
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		RequesterID:          aggregate.RequesterID().Bytes(),
		Address:              aggregate.Address(),
		CommunityID:          rawIDPtr(aggregate.CommunityID()),
		WasteType:            string(aggregate.WasteType()),
		DeclaredVolume:       aggregate.DeclaredVolume(),
		Remarks:              aggregate.Remarks(),
		EstimatedChargeCents: aggregate.EstimatedCharge().Cents(),
		ActualVolume:         aggregate.ActualVolume(),
		FinalChargeCents:     finalChargeCents,
		PropertyOrgID:        rawIDPtr(aggregate.PropertyOrgID()),
		RecyclingOrgID:       rawIDPtr(aggregate.RecyclingOrgID()),
		TransportOrgID:       rawIDPtr(aggregate.TransportOrgID()),
		DriverID:             rawIDPtr(aggregate.DriverID()),
		VehicleID:            rawIDPtr(aggregate.VehicleID()),
		ExcludedOrgIDs:       excluded,
		Evidence:             evidence,
		DepartureConfirmedBy: rawIDPtr(aggregate.DepartureConfirmedBy()),
		DepartureConfirmedAt: aggregate.DepartureConfirmedAt(),
		Status:               int(aggregate.Status()),
		Version:              aggregate.Version(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including assignments, evidence, and
// the version token using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	communityID, err := domainIDPtr(dto.CommunityID)
	if err != nil {
		return nil, err
	}
	propertyOrgID, err := domainIDPtr(dto.PropertyOrgID)
	if err != nil {
		return nil, err
	}
	recyclingOrgID, err := domainIDPtr(dto.RecyclingOrgID)
	if err != nil {
		return nil, err
	}
	transportOrgID, err := domainIDPtr(dto.TransportOrgID)
	if err != nil {
		return nil, err
	}
	driverID, err := domainIDPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := domainIDPtr(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	departureConfirmedBy, err := domainIDPtr(dto.DepartureConfirmedBy)
	if err != nil {
		return nil, err
	}

	excluded := make([]kernel.UUID, 0, len(dto.ExcludedOrgIDs))
	for _, raw := range dto.ExcludedOrgIDs {
		orgID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		excluded = append(excluded, orgID)
	}

	evidence := make([]order.Evidence, 0, len(dto.Evidence))
	for _, evDTO := range dto.Evidence {
		ev, evErr := order.NewEvidence(order.Status(evDTO.Status), evDTO.PhotoRef, evDTO.RecordedAt)
		if evErr != nil {
			return nil, evErr
		}
		evidence = append(evidence, ev)
	}

	estimatedCharge, err := kernel.NewMoney(dto.EstimatedChargeCents)
	if err != nil {
		return nil, err
	}

	var finalCharge *kernel.Money
	if dto.FinalChargeCents != nil {
		charge, chargeErr := kernel.NewMoney(*dto.FinalChargeCents)
		if chargeErr != nil {
			return nil, chargeErr
		}
		finalCharge = &charge
	}

	return order.RestoreOrder(
		id,
		requesterID,
		dto.Address,
		communityID,
		order.WasteType(dto.WasteType),
		dto.DeclaredVolume,
		estimatedCharge,
		dto.Remarks,
		order.Status(dto.Status),
		propertyOrgID, recyclingOrgID, transportOrgID, driverID, vehicleID,
		excluded,
		evidence,
		dto.ActualVolume,
		finalCharge,
		departureConfirmedBy,
		dto.DepartureConfirmedAt,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func rawIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func domainIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}

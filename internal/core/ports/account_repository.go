package ports

import (
	"context"

	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/vehicle"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
}

// VehicleRepository defines the persistence contract for transport fleet
// vehicles.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists a vehicle status change.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}

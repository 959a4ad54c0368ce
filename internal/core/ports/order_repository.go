// Package ports defines repository and collaborator interfaces for the waste
// pickup domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version token: if a concurrent transition
	// committed first, Update fails with ConcurrentModification and no row
	// is touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order awaiting dispatch.
	// Used by the dispatch job to pick up unassigned orders.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllInWeighedStatus retrieves all orders awaiting settlement.
	// Used by the settlement job to finalize weighed orders.
	GetAllInWeighedStatus(ctx context.Context) ([]*order.Order, error)
}

package ports

import (
	"wastehaul/internal/core/domain/model/organization"
)

// DispatchPolicy selects one organization from a non-empty candidate pool.
// Implementations must be side-effect free so a failed dispatch can be
// retried against the same pools.
type DispatchPolicy interface {
	Select(candidates []*organization.Organization) (*organization.Organization, error)
}

package ports

import (
	"context"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/organization"
)

// OrganizationRepository defines the persistence contract for organizations
// and their membership rosters.
type OrganizationRepository interface {
	// Add persists a new organization.
	Add(ctx context.Context, aggregate *organization.Organization) error

	// Get retrieves an organization by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error)

	// GetAllActiveByKind retrieves all active organizations of the given
	// kind. Used to build dispatch candidate pools.
	GetAllActiveByKind(ctx context.Context, kind organization.Kind) ([]*organization.Organization, error)

	// AddMembership persists a new membership on an organization's roster.
	AddMembership(ctx context.Context, membership *organization.Membership) error

	// GetMembershipsByAccount retrieves every membership held by the given
	// account across all organizations. Used to resolve an actor's identity.
	GetMembershipsByAccount(ctx context.Context, accountID kernel.UUID) ([]*organization.Membership, error)
}

// CommunityRepository defines the persistence contract for communities.
type CommunityRepository interface {
	// Add persists a new community.
	Add(ctx context.Context, aggregate *organization.Community) error

	// Get retrieves a community by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*organization.Community, error)

	// FindByAddress resolves a pickup address to its community. Returns
	// ObjectNotFound when the address matches no known community.
	FindByAddress(ctx context.Context, address string) (*organization.Community, error)
}

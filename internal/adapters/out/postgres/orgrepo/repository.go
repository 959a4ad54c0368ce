package orgrepo

import (
	"context"
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new organization to the database.
func (r *GormOrganizationRepository) Add(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := organizationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an organization by ID.
func (r *GormOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", id.String())
		}
		return nil, err
	}

	return organizationToDomain(dto)
}

// GetAllActiveByKind retrieves all active organizations of the given kind.
func (r *GormOrganizationRepository) GetAllActiveByKind(
	ctx context.Context,
	kind organization.Kind,
) ([]*organization.Organization, error) {
	var dtos []OrganizationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "kind = ? AND active = ?", int(kind), true).Error
	if err != nil {
		return nil, err
	}

	organizations := make([]*organization.Organization, 0, len(dtos))
	for _, dto := range dtos {
		org, domainErr := organizationToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		organizations = append(organizations, org)
	}

	return organizations, nil
}

// AddMembership saves a new membership to the database.
func (r *GormOrganizationRepository) AddMembership(ctx context.Context, membership *organization.Membership) error {
	if err := membership.Validate(); err != nil {
		return err
	}

	dto := membershipFromDomain(membership)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(membership.ID(), membership)
	return nil
}

// GetMembershipsByAccount retrieves every membership held by an account.
func (r *GormOrganizationRepository) GetMembershipsByAccount(
	ctx context.Context,
	accountID kernel.UUID,
) ([]*organization.Membership, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MembershipDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "account_id = ?", accountID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	memberships := make([]*organization.Membership, 0, len(dtos))
	for _, dto := range dtos {
		membership, domainErr := membershipToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		memberships = append(memberships, membership)
	}

	return memberships, nil
}

// GormCommunityRepository implements CommunityRepository using GORM.
type GormCommunityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCommunityRepository creates a new GORM community repository.
func NewGormCommunityRepository(db *gorm.DB, tracker aggregateTracker) *GormCommunityRepository {
	return &GormCommunityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new community to the database.
func (r *GormCommunityRepository) Add(ctx context.Context, aggregate *organization.Community) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := communityFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a community by ID.
func (r *GormCommunityRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Community, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CommunityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("community", id.String())
		}
		return nil, err
	}

	return communityToDomain(dto)
}

// FindByAddress resolves a pickup address to its community.
func (r *GormCommunityRepository) FindByAddress(ctx context.Context, address string) (*organization.Community, error) {
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	var dto CommunityDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("community", address)
		}
		return nil, err
	}

	return communityToDomain(dto)
}

// Package orgrepo provides data transfer objects and mapping functions for
// organization persistence: the organizations themselves, their membership
// rosters, and the communities managed by property organizations.
package orgrepo

import (
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

// OrganizationDTO represents the database structure for persisting
// organization aggregates.
type OrganizationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Kind   int       `gorm:"type:int;not null;index"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for organization entities.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// MembershipDTO represents one account's membership on an organization's
// roster, with the sub-role and the optional community scope for
// non-primary property members.
type MembershipDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind           int        `gorm:"type:int;not null"`
	AccountID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	IsPrimary      bool       `gorm:"not null"`
	SubRole        int        `gorm:"type:int;not null"`
	CommunityID    *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for membership entities.
func (MembershipDTO) TableName() string {
	return "memberships"
}

// CommunityDTO represents a residential or commercial complex, optionally
// linked to the property organization managing it.
type CommunityDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Address       string     `gorm:"type:varchar(512);not null;index"`
	PropertyOrgID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for community entities.
func (CommunityDTO) TableName() string {
	return "communities"
}

func organizationFromDomain(aggregate *organization.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Kind:   int(aggregate.Kind()),
		Active: aggregate.IsActive(),
	}
}

func organizationToDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return organization.RestoreOrganization(id, dto.Name, organization.Kind(dto.Kind), dto.Active)
}

func membershipFromDomain(membership *organization.Membership) MembershipDTO {
	var communityID *uuid.UUID
	if id := membership.CommunityID(); id != nil {
		raw := id.Bytes()
		communityID = &raw
	}

	return MembershipDTO{
		ID:             membership.ID().Bytes(),
		OrganizationID: membership.OrganizationID().Bytes(),
		Kind:           int(membership.Kind()),
		AccountID:      membership.AccountID().Bytes(),
		IsPrimary:      membership.IsPrimary(),
		SubRole:        int(membership.SubRole()),
		CommunityID:    communityID,
	}
}

func membershipToDomain(dto MembershipDTO) (*organization.Membership, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	var communityID *kernel.UUID
	if dto.CommunityID != nil {
		scoped, scopeErr := kernel.UUIDFromBytes((*dto.CommunityID)[:])
		if scopeErr != nil {
			return nil, scopeErr
		}
		communityID = &scoped
	}

	return organization.RestoreMembership(
		id,
		organizationID,
		organization.Kind(dto.Kind),
		accountID,
		dto.IsPrimary,
		organization.SubRole(dto.SubRole),
		communityID,
	)
}

func communityFromDomain(aggregate *organization.Community) CommunityDTO {
	var propertyOrgID *uuid.UUID
	if id := aggregate.PropertyOrgID(); id != nil {
		raw := id.Bytes()
		propertyOrgID = &raw
	}

	return CommunityDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Address:       aggregate.Address(),
		PropertyOrgID: propertyOrgID,
	}
}

func communityToDomain(dto CommunityDTO) (*organization.Community, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var propertyOrgID *kernel.UUID
	if dto.PropertyOrgID != nil {
		orgID, orgErr := kernel.UUIDFromBytes((*dto.PropertyOrgID)[:])
		if orgErr != nil {
			return nil, orgErr
		}
		propertyOrgID = &orgID
	}

	return organization.RestoreCommunity(id, dto.Name, dto.Address, propertyOrgID)
}

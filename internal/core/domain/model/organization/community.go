package organization

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

var (
	// ErrCommunityIsNotConstructed is returned when a Community was not
	// created through NewCommunity or RestoreCommunity.
	ErrCommunityIsNotConstructed = errors.New("Community must be created via NewCommunity or RestoreCommunity")

	// ErrCommunityNameIsRequired is returned for an empty community name.
	ErrCommunityNameIsRequired = errs.NewValueIsRequiredError("community name")
)

// Community is a residential or commercial complex. An order whose pickup
// address resolves to a community gains property-side visibility through the
// community's managing property organization; a community may be unmanaged
// until an administrator links it.
type Community struct {
	id            kernel.UUID
	name          string
	address       string
	propertyOrgID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCommunity creates a community. propertyOrgID may be nil for a community
// not yet linked to a managing property company.
func NewCommunity(id kernel.UUID, name, address string, propertyOrgID *kernel.UUID) (*Community, error) {
	c := &Community{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrCommunityNameIsRequired
	}
	if propertyOrgID != nil {
		if err := propertyOrgID.Validate(); err != nil {
			return nil, err
		}
		linked := *propertyOrgID
		c.propertyOrgID = &linked
	}

	c.id = id
	c.name = name
	return c, nil
}

// RestoreCommunity reconstructs a community from persistence.
func RestoreCommunity(id kernel.UUID, name, address string, propertyOrgID *kernel.UUID) (*Community, error) {
	return NewCommunity(id, name, address, propertyOrgID)
}

// Validate ensures the community was created through a constructor.
func (c *Community) Validate() error {
	if c == nil {
		return ErrCommunityIsNotConstructed
	}
	return c.guard.Validate(ErrCommunityIsNotConstructed)
}

// ID returns the community identifier.
func (c *Community) ID() kernel.UUID {
	return c.id
}

// Name returns the community name.
func (c *Community) Name() string {
	return c.name
}

// Address returns the street address used for order matching.
func (c *Community) Address() string {
	return c.address
}

// PropertyOrgID returns the managing property organization, or nil when the
// community is unmanaged.
func (c *Community) PropertyOrgID() *kernel.UUID {
	return c.propertyOrgID
}

// IsManagedBy reports whether the given property organization manages this
// community.
func (c *Community) IsManagedBy(orgID kernel.UUID) bool {
	return c.propertyOrgID != nil && c.propertyOrgID.IsEqual(orgID)
}

// Package organization models the three company tiers of the waste-pickup
// workflow (property, transport, recycling) together with the membership
// join records that bind accounts to them and the communities that property
// companies manage.
package organization

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

var (
	// ErrOrganizationIsNotConstructed is returned when an Organization was
	// not created through NewOrganization or RestoreOrganization.
	ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization or RestoreOrganization")

	// ErrOrganizationNameIsRequired is returned for an empty organization name.
	ErrOrganizationNameIsRequired = errs.NewValueIsRequiredError("organization name")
)

// Organization is a property, transport, or recycling company. The roster of
// memberships, the managed communities (property), and the vehicle fleet
// (transport) are separate aggregates referencing the organization by id.
type Organization struct {
	id     kernel.UUID
	name   string
	kind   Kind
	active bool

	guard guard.ConstructorGuard
}

// NewOrganization creates an active organization of the given kind.
func NewOrganization(id kernel.UUID, name string, kind Kind) (*Organization, error) {
	o := &Organization{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setName(name),
		o.setKind(kind),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrganization reconstructs an organization from persistence.
func RestoreOrganization(id kernel.UUID, name string, kind Kind, active bool) (*Organization, error) {
	o, err := NewOrganization(id, name, kind)
	if err != nil {
		return nil, err
	}
	o.active = active
	return o, nil
}

// Validate ensures the organization was created through a constructor.
func (o *Organization) Validate() error {
	if o == nil {
		return ErrOrganizationIsNotConstructed
	}
	return o.guard.Validate(ErrOrganizationIsNotConstructed)
}

// ID returns the organization identifier.
func (o *Organization) ID() kernel.UUID {
	return o.id
}

// Name returns the company name.
func (o *Organization) Name() string {
	return o.name
}

// Kind returns the company tier.
func (o *Organization) Kind() Kind {
	return o.kind
}

// IsActive reports whether the organization takes part in dispatch.
func (o *Organization) IsActive() bool {
	return o.active
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return ErrOrganizationNameIsRequired
	}
	o.name = name
	return nil
}

func (o *Organization) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

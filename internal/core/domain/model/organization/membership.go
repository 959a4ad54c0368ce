package organization

import (
	"errors"
	"fmt"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

// ErrMembershipIsNotConstructed is returned when a Membership was not created
// through NewMembership or RestoreMembership.
var ErrMembershipIsNotConstructed = errors.New("Membership must be created via NewMembership or RestoreMembership")

// Membership binds an account to an organization. It is a tagged variant:
// the organization kind determines which sub-role enumeration is legal, and
// the constructor validates that at write time.
//
// Invariants:
//   - a primary membership carries SubRoleNone; broad rights come from the
//     primary flag, not from a sub-role
//   - a non-primary transport membership is either dispatcher or driver
//   - the community scope is only meaningful for non-primary property
//     members, narrowing their visibility to one managed community
type Membership struct {
	id             kernel.UUID
	organizationID kernel.UUID
	kind           Kind
	accountID      kernel.UUID
	isPrimary      bool
	subRole        SubRole
	communityID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMembership creates a membership after validating the sub-role against
// the organization kind and the primary flag.
func NewMembership(
	id kernel.UUID,
	organizationID kernel.UUID,
	kind Kind,
	accountID kernel.UUID,
	isPrimary bool,
	subRole SubRole,
	communityID *kernel.UUID,
) (*Membership, error) {
	m := &Membership{
		isPrimary: isPrimary,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		firstInvalid(id, organizationID, accountID),
		kind.Validate(),
		m.setSubRole(kind, isPrimary, subRole),
		m.setCommunityScope(kind, isPrimary, communityID),
	); err != nil {
		return nil, err
	}

	m.id = id
	m.organizationID = organizationID
	m.kind = kind
	m.accountID = accountID

	return m, nil
}

// RestoreMembership reconstructs a membership from persistence. The same
// validation as NewMembership applies; rows written before a rule change
// must not resurrect illegal sub-role combinations.
func RestoreMembership(
	id kernel.UUID,
	organizationID kernel.UUID,
	kind Kind,
	accountID kernel.UUID,
	isPrimary bool,
	subRole SubRole,
	communityID *kernel.UUID,
) (*Membership, error) {
	return NewMembership(id, organizationID, kind, accountID, isPrimary, subRole, communityID)
}

// Validate ensures the membership was created through a constructor.
func (m *Membership) Validate() error {
	if m == nil {
		return ErrMembershipIsNotConstructed
	}
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}

// ID returns the membership identifier.
func (m *Membership) ID() kernel.UUID {
	return m.id
}

// OrganizationID returns the organization this membership belongs to.
func (m *Membership) OrganizationID() kernel.UUID {
	return m.organizationID
}

// Kind returns the organization kind the sub-role was validated against.
func (m *Membership) Kind() Kind {
	return m.kind
}

// AccountID returns the member's account.
func (m *Membership) AccountID() kernel.UUID {
	return m.accountID
}

// IsPrimary reports whether this is the organization's primary admin
// membership.
func (m *Membership) IsPrimary() bool {
	return m.isPrimary
}

// SubRole returns the per-kind sub-role. SubRoleNone for primary members.
func (m *Membership) SubRole() SubRole {
	return m.subRole
}

// CommunityID returns the community scope of a non-primary property member,
// or nil when the member is unscoped.
func (m *Membership) CommunityID() *kernel.UUID {
	return m.communityID
}

func (m *Membership) setSubRole(kind Kind, isPrimary bool, subRole SubRole) error {
	if isPrimary {
		if subRole != SubRoleNone {
			return errs.NewValueIsInvalidErrorWithCause("sub-role",
				fmt.Errorf("primary membership cannot carry sub-role %s", subRole))
		}
		m.subRole = SubRoleNone
		return nil
	}

	if kind == KindTransport && subRole == SubRoleNone {
		return errs.NewValueIsInvalidErrorWithCause("sub-role",
			errors.New("non-primary transport member must be a dispatcher or a driver"))
	}

	if err := subRole.ValidateFor(kind); err != nil {
		return err
	}
	m.subRole = subRole
	return nil
}

func (m *Membership) setCommunityScope(kind Kind, isPrimary bool, communityID *kernel.UUID) error {
	if communityID == nil {
		return nil
	}
	if kind != KindProperty || isPrimary {
		return errs.NewValueIsInvalidErrorWithCause("community scope",
			errors.New("community scope applies only to non-primary property members"))
	}
	if err := communityID.Validate(); err != nil {
		return err
	}
	scoped := *communityID
	m.communityID = &scoped
	return nil
}

func firstInvalid(ids ...kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

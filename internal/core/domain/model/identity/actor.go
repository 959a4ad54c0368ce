// Package identity models the resolved acting identity behind every core
// operation. The auth collaborator verifies credentials and supplies the
// account id; the membership registry attaches the membership set. The core
// trusts that resolution and derives all authorization from it.
package identity

import (
	"errors"

	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Actor is an account identity together with its resolved memberships.
// It is a read-only snapshot valid for the duration of one operation.
type Actor struct {
	accountID   kernel.UUID
	role        account.Role
	memberships []*organization.Membership

	guard guard.ConstructorGuard
}

// NewActor creates an actor from an account id, its global role, and its
// membership set. Memberships not belonging to the account are rejected.
func NewActor(accountID kernel.UUID, role account.Role, memberships []*organization.Membership) (Actor, error) {
	if err := accountID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	for _, m := range memberships {
		if err := m.Validate(); err != nil {
			return Actor{}, err
		}
		if !m.AccountID().IsEqual(accountID) {
			return Actor{}, errors.New("membership does not belong to the actor's account")
		}
	}

	return Actor{
		accountID:   accountID,
		role:        role,
		memberships: memberships,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// AccountID returns the acting account.
func (a Actor) AccountID() kernel.UUID {
	return a.accountID
}

// Role returns the account's global role tag.
func (a Actor) Role() account.Role {
	return a.role
}

// Memberships returns the resolved membership snapshot.
func (a Actor) Memberships() []*organization.Membership {
	return a.memberships
}

// IsAdministrator reports whether the actor is a system administrator.
func (a Actor) IsAdministrator() bool {
	return a.role == account.RoleAdministrator
}

// MembershipIn returns the actor's membership in the given organization.
func (a Actor) MembershipIn(orgID kernel.UUID) (*organization.Membership, bool) {
	for _, m := range a.memberships {
		if m.OrganizationID().IsEqual(orgID) {
			return m, true
		}
	}
	return nil, false
}

// IsPrimaryOf reports whether the actor holds the primary admin membership
// of the given organization.
func (a Actor) IsPrimaryOf(orgID kernel.UUID) bool {
	m, ok := a.MembershipIn(orgID)
	return ok && m.IsPrimary()
}

// IsDispatcherOf reports whether the actor may act as dispatcher for the
// given transport organization. The primary admin holds dispatcher rights
// implicitly.
func (a Actor) IsDispatcherOf(orgID kernel.UUID) bool {
	m, ok := a.MembershipIn(orgID)
	if !ok || m.Kind() != organization.KindTransport {
		return false
	}
	return m.IsPrimary() || m.SubRole() == organization.SubRoleDispatcher
}

// IsDriverIn reports whether the actor is a driver member of the given
// transport organization.
func (a Actor) IsDriverIn(orgID kernel.UUID) bool {
	m, ok := a.MembershipIn(orgID)
	return ok && m.Kind() == organization.KindTransport && m.SubRole() == organization.SubRoleDriver
}

// IsWeigherOf reports whether the actor may perform weigh-ins for the given
// recycling organization. The primary admin holds weigh-in rights implicitly.
func (a Actor) IsWeigherOf(orgID kernel.UUID) bool {
	m, ok := a.MembershipIn(orgID)
	if !ok || m.Kind() != organization.KindRecycling {
		return false
	}
	return m.IsPrimary() || m.SubRole() == organization.SubRoleWeigher
}

// MembershipsOfKind returns the actor's memberships in organizations of the
// given kind.
func (a Actor) MembershipsOfKind(kind organization.Kind) []*organization.Membership {
	var out []*organization.Membership
	for _, m := range a.memberships {
		if m.Kind() == kind {
			out = append(out, m)
		}
	}
	return out
}

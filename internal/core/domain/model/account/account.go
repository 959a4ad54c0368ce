// Package account models user accounts: long-lived reference data created by
// administrative flows and consumed read-mostly by the order workflow.
package account

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was not created
	// through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

	// ErrNameIsRequired is returned for an empty account name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Account is an identity with exactly one global role tag. Credentials and
// token verification belong to the auth collaborator; the core only reads
// accounts to resolve actors and check activity.
type Account struct {
	id     kernel.UUID
	name   string
	phone  string
	role   Role
	active bool

	guard guard.ConstructorGuard
}

// NewAccount creates an active account with the given identity and role.
func NewAccount(id kernel.UUID, name, phone string, role Role) (*Account, error) {
	a := &Account{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role),
	); err != nil {
		return nil, err
	}
	a.phone = phone

	return a, nil
}

// RestoreAccount reconstructs an account from persistence, including its
// activity flag.
func RestoreAccount(id kernel.UUID, name, phone string, role Role, active bool) (*Account, error) {
	a, err := NewAccount(id, name, phone, role)
	if err != nil {
		return nil, err
	}
	a.active = active
	return a, nil
}

// Validate ensures the account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Phone returns the contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Role returns the immutable global role tag.
func (a *Account) Role() Role {
	return a.role
}

// IsActive reports whether the account may act in the system.
func (a *Account) IsActive() bool {
	return a.active
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

package commands

import (
	"context"

	"wastehaul/internal/core/domain/model/identity"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/ports"
	"wastehaul/internal/pkg/errs"
)

// resolveActor builds the acting identity from the account record and its
// memberships, inside the caller's transaction so authorization checks are
// consistent with the mutation they guard. Deactivated accounts cannot act.
func resolveActor(
	ctx context.Context,
	accounts ports.AccountRepository,
	organizations ports.OrganizationRepository,
	accountID kernel.UUID,
) (identity.Actor, error) {
	acc, err := accounts.Get(ctx, accountID)
	if err != nil {
		return identity.Actor{}, err
	}
	if !acc.IsActive() {
		return identity.Actor{}, errs.NewUnauthorizedError("account is deactivated")
	}

	memberships, err := organizations.GetMembershipsByAccount(ctx, accountID)
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.NewActor(accountID, acc.Role(), memberships)
}

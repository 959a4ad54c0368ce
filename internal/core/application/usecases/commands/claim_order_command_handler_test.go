package commands_test

import (
	"testing"

	"wastehaul/internal/core/application/usecases/commands"
	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	transportOrgID := kernel.NewUUID()
	claimedOrder := createDispatchedOrder(t)

	cmd, err := commands.NewClaimOrderCommand(claimedOrder.ID(), actorID, transportOrgID)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	organizations := new(MockOrganizationRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts).Once()
	uow.On("OrganizationRepository").Return(organizations).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	accounts.On("Get", ctx, actorID).
		Return(createActiveAccount(t, actorID, account.RoleTransport), nil).Once()
	organizations.On("GetMembershipsByAccount", ctx, actorID).
		Return([]*organization.Membership{createDispatcherMembership(t, actorID, transportOrgID)}, nil).Once()

	orders.On("Get", ctx, claimedOrder.ID()).Return(claimedOrder, nil).Once()
	orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*order.Order)
			assert.Equal(t, order.Assigned, updated.Status())
			require.NotNil(t, updated.TransportOrgID())
			assert.True(t, updated.TransportOrgID().IsEqual(transportOrgID))
		}).
		Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_NotADispatcher(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	transportOrgID := kernel.NewUUID()
	claimedOrder := createDispatchedOrder(t)

	cmd, err := commands.NewClaimOrderCommand(claimedOrder.ID(), actorID, transportOrgID)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	organizations := new(MockOrganizationRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts).Once()
	uow.On("OrganizationRepository").Return(organizations).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	accounts.On("Get", ctx, actorID).
		Return(createActiveAccount(t, actorID, account.RoleTransport), nil).Once()
	// no membership in the claiming organization
	organizations.On("GetMembershipsByAccount", ctx, actorID).
		Return([]*organization.Membership{}, nil).Once()
	orders.On("Get", ctx, claimedOrder.ID()).Return(claimedOrder, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	orders.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestClaimOrderCommandHandler_Handle_ConcurrentClaim(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	transportOrgID := kernel.NewUUID()
	claimedOrder := createDispatchedOrder(t)

	cmd, err := commands.NewClaimOrderCommand(claimedOrder.ID(), actorID, transportOrgID)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	organizations := new(MockOrganizationRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts).Once()
	uow.On("OrganizationRepository").Return(organizations).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	accounts.On("Get", ctx, actorID).
		Return(createActiveAccount(t, actorID, account.RoleTransport), nil).Once()
	organizations.On("GetMembershipsByAccount", ctx, actorID).
		Return([]*organization.Membership{createDispatcherMembership(t, actorID, transportOrgID)}, nil).Once()

	orders.On("Get", ctx, claimedOrder.ID()).Return(claimedOrder, nil).Once()
	// another dispatcher committed first
	orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConcurrentModificationError("order", claimedOrder.ID().String())).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewClaimOrderCommand_InvalidInput(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewClaimOrderCommand(invalidID, kernel.NewUUID(), kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"wastehaul/internal/core/application/usecases/commands"
	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/core/domain/model/payment"
	"wastehaul/internal/core/domain/model/vehicle"
	"wastehaul/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInWeighedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrganizationRepository struct{ mock.Mock }

func (m *MockOrganizationRepository) Add(ctx context.Context, aggregate *organization.Organization) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetAllActiveByKind(ctx context.Context, kind organization.Kind) ([]*organization.Organization, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) AddMembership(ctx context.Context, membership *organization.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockOrganizationRepository) GetMembershipsByAccount(ctx context.Context, accountID kernel.UUID) ([]*organization.Membership, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*organization.Membership), args.Error(1)
}

type MockCommunityRepository struct{ mock.Mock }

func (m *MockCommunityRepository) Add(ctx context.Context, aggregate *organization.Community) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCommunityRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Community, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Community), args.Error(1)
}

func (m *MockCommunityRepository) FindByAddress(ctx context.Context, address string) (*organization.Community, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Community), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, instruction *payment.Instruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

func (m *MockOutboxRepository) Update(ctx context.Context, instruction *payment.Instruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetAllPending(ctx context.Context) ([]*payment.Instruction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Instruction), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Send(ctx context.Context, instruction *payment.Instruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

// MockUoW stands in for every composite unit of work the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

func (m *MockUoW) CommunityRepository() ports.CommunityRepository {
	args := m.Called()
	return args.Get(0).(ports.CommunityRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) PaymentOutboxRepository() ports.PaymentOutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentOutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

// Shared fixture helpers.

func createActiveAccount(t *testing.T, id kernel.UUID, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.RestoreAccount(id, "Test Account", "+4712345678", role, true)
	require.NoError(t, err)
	return acc
}

func createDispatcherMembership(t *testing.T, accountID, transportOrgID kernel.UUID) *organization.Membership {
	t.Helper()
	m, err := organization.NewMembership(
		kernel.NewUUID(), transportOrgID, organization.KindTransport,
		accountID, false, organization.SubRoleDispatcher, nil,
	)
	require.NoError(t, err)
	return m
}

func createMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "12 Harbor Rd", nil,
		order.WasteConcrete, 10, createMoney(t, 30000), "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func createDispatchedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createPendingOrder(t)
	require.NoError(t, o.AssignCompanies(kernel.NewUUID(), kernel.NewUUID(), o.CreatedAt()))
	return o
}

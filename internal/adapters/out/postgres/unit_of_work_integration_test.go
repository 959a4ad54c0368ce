package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "wastehaul/internal/adapters/out/postgres"
	"wastehaul/internal/adapters/out/postgres/accountrepo"
	"wastehaul/internal/adapters/out/postgres/orderrepo"
	"wastehaul/internal/adapters/out/postgres/orgrepo"
	"wastehaul/internal/adapters/out/postgres/outboxrepo"
	"wastehaul/internal/adapters/out/postgres/vehiclerepo"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/core/domain/model/payment"
	"wastehaul/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orgrepo.OrganizationDTO{},
		&orgrepo.MembershipDTO{},
		&orgrepo.CommunityDTO{},
		&accountrepo.AccountDTO{},
		&vehiclerepo.VehicleDTO{},
		&outboxrepo.InstructionDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, organizations, memberships, communities, accounts, vehicles, payment_instructions",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.OrganizationRepository(), "First instance should provide organization repository")
	suite.NotNil(uow1.PaymentOutboxRepository(), "First instance should provide payment outbox repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.AccountRepository(), "Second instance should provide account repository")
	suite.NotNil(uow2.VehicleRepository(), "Second instance should provide vehicle repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder(suite.T())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_DispatchTransaction verifies the dispatch flow writes order
// assignments and reads organization pools within the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DispatchTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	propertyOrg := createTestOrganization(suite.T(), organization.KindProperty)
	recyclingOrg := createTestOrganization(suite.T(), organization.KindRecycling)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, propertyOrg)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, recyclingOrg)
	suite.Require().NoError(err)

	// Build the candidate pools and assign the companies
	properties, err := uow.OrganizationRepository().GetAllActiveByKind(ctx, organization.KindProperty)
	suite.Require().NoError(err)
	suite.Require().Len(properties, 1)

	recyclers, err := uow.OrganizationRepository().GetAllActiveByKind(ctx, organization.KindRecycling)
	suite.Require().NoError(err)
	suite.Require().Len(recyclers, 1)

	err = testOrder.AssignCompanies(properties[0].ID(), recyclers[0].ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the assignment persisted
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Dispatched, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.PropertyOrgID())
	suite.Equal(propertyOrg.ID(), *retrievedOrder.PropertyOrgID())
	suite.Require().NotNil(retrievedOrder.RecyclingOrgID())
	suite.Equal(recyclingOrg.ID(), *retrievedOrder.RecyclingOrgID())
}

// TestUnitOfWork_SettlementTransaction verifies the settlement flow writes the
// order and its payment instruction atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SettlementTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	instruction := createTestInstruction(suite.T(), testOrder.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.PaymentOutboxRepository().Add(ctx, instruction)
	suite.Require().NoError(err)

	// Commit the pair
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both records persisted
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	pending, err := newUow.PaymentOutboxRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(instruction.ID(), pending[0].ID())
	suite.Equal(testOrder.ID(), pending[0].OrderID())
	suite.True(pending[0].IsPending())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())
	instruction := createTestInstruction(suite.T(), testOrder.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.PaymentOutboxRepository().Add(ctx, instruction)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	pending, err := uow.PaymentOutboxRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Len(pending, 1)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	pending, err = newUow.PaymentOutboxRepository().GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending, "Instruction should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := createTestOrder(suite.T())
	order2 := createTestOrder(suite.T())

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder(suite.T())

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a workflow
// spanning dispatch and settlement repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := createTestOrder(suite.T())
	propertyOrg := createTestOrganization(suite.T(), organization.KindProperty)
	recyclingOrg := createTestOrganization(suite.T(), organization.KindRecycling)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, propertyOrg)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, recyclingOrg)
	suite.Require().NoError(err)

	// Perform domain operations
	err = testOrder.AssignCompanies(propertyOrg.ID(), recyclingOrg.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	properties, err := newUow.OrganizationRepository().GetAllActiveByKind(ctx, organization.KindProperty)
	suite.Require().NoError(err)
	suite.Empty(properties, "No organizations should exist after rollback")
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial order outside transaction
	existingOrder := createTestOrder(suite.T())
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add valid entities
	newOrder := createTestOrder(suite.T())
	newOrg := createTestOrganization(suite.T(), organization.KindTransport)

	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, newOrg)
	suite.Require().NoError(err)

	// Try to add an order reusing an existing ID (should fail)
	estimatedCharge, err := kernel.NewMoney(30000)
	suite.Require().NoError(err)
	duplicateOrder, err := order.NewOrder(
		existingOrder.ID(),
		kernel.NewUUID(),
		"12 Harbor Rd",
		nil,
		order.WasteConcrete,
		10,
		estimatedCharge,
		"",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, duplicateOrder)
	suite.Require().Error(err, "Adding duplicate order should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing order should still exist (was added before transaction)
	_, err = newUow.OrderRepository().Get(ctx, existingOrder.ID())
	suite.Require().NoError(err, "Existing order should still exist")

	// New entities should not exist (transaction was rolled back)
	_, err = newUow.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err, "New order should not exist after rollback")

	_, err = newUow.OrganizationRepository().Get(ctx, newOrg.ID())
	suite.Require().Error(err, "New organization should not exist after rollback")
}

// TestUnitOfWork_QueryConsistency verifies query results are consistent within transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QueryConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial data outside transaction
	order1 := createTestOrder(suite.T())
	order2 := createTestOrder(suite.T())
	propertyOrg := createTestOrganization(suite.T(), organization.KindProperty)
	recyclingOrg := createTestOrganization(suite.T(), organization.KindRecycling)

	err := uow.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, propertyOrg)
	suite.Require().NoError(err)
	err = uow.OrganizationRepository().Add(ctx, recyclingOrg)
	suite.Require().NoError(err)

	// Begin transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Dispatch one order
	err = order1.AssignCompanies(propertyOrg.ID(), recyclingOrg.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, order1)
	suite.Require().NoError(err)

	// Query for pending orders - should find order2 but not order1
	pendingOrder, err := uow.OrderRepository().GetFirstInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(order2.ID(), pendingOrder.ID(), "Should find the undispatched order")

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify queries still return consistent results after commit
	newUow := suite.factory.Create()

	pendingOrder, err = newUow.OrderRepository().GetFirstInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(order2.ID(), pendingOrder.ID())
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	estimatedCharge, err := kernel.NewMoney(30000)
	if err != nil {
		t.Fatal(err)
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Harbor Rd",
		nil,
		order.WasteConcrete,
		10,
		estimatedCharge,
		"",
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	return testOrder
}

// createTestOrganization creates an active organization of the given kind.
func createTestOrganization(t *testing.T, kind organization.Kind) *organization.Organization {
	t.Helper()

	org, err := organization.NewOrganization(kernel.NewUUID(), "Test Company", kind)
	if err != nil {
		t.Fatal(err)
	}
	return org
}

// createTestInstruction creates a pending refund instruction for the order.
func createTestInstruction(t *testing.T, orderID kernel.UUID) *payment.Instruction {
	t.Helper()

	amount, err := kernel.NewMoney(6000)
	if err != nil {
		t.Fatal(err)
	}

	instruction, err := payment.NewInstruction(
		kernel.NewUUID(),
		orderID,
		amount,
		payment.DirectionRefund,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	return instruction
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"wastehaul/internal/adapters/out/postgres/accountrepo"
	"wastehaul/internal/adapters/out/postgres/orderrepo"
	"wastehaul/internal/adapters/out/postgres/orgrepo"
	"wastehaul/internal/core/application/usecases/queries"
	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// VisibilityIntegrationTestSuite exercises the read-side visibility filter
// against a real database: the SQL clause must grant exactly what the
// domain's membership rules grant.
type VisibilityIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *VisibilityIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&orgrepo.MembershipDTO{},
		&orgrepo.CommunityDTO{},
		&orderrepo.OrderDTO{},
	))
}

func (suite *VisibilityIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE accounts, memberships, communities, orders").Error,
	)
}

func (suite *VisibilityIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VisibilityIntegrationTestSuite) TestScopedStaff_SeesOnlyCommunitiesStillManagedByTheirOrganization() {
	ctx := context.Background()

	staffID := suite.seedAccount(account.RoleProperty)
	managingOrgID := uuid.New()
	otherOrgID := uuid.New()

	// both grants were issued by the same organization, but one community
	// has since been reassigned to another manager
	managedCommunityID := suite.seedCommunity(&managingOrgID)
	reassignedCommunityID := suite.seedCommunity(&otherOrgID)
	suite.seedScopedMembership(staffID, managingOrgID, managedCommunityID)
	suite.seedScopedMembership(staffID, managingOrgID, reassignedCommunityID)

	visibleOrderID := suite.seedOrder(&managedCommunityID)
	hiddenOrderID := suite.seedOrder(&reassignedCommunityID)

	actorID, err := kernel.UUIDFromBytes(staffID[:])
	suite.Require().NoError(err)
	listQuery, err := queries.NewGetVisibleOrdersQuery(actorID)
	suite.Require().NoError(err)

	handler := queries.NewGetVisibleOrdersQueryHandler(suite.db)
	responses, err := handler.Handle(ctx, listQuery)
	suite.Require().NoError(err)

	suite.Require().Len(responses, 1)
	suite.Equal(visibleOrderID.String(), responses[0].ID.String())
	suite.NotEqual(hiddenOrderID.String(), responses[0].ID.String())
}

func (suite *VisibilityIntegrationTestSuite) TestScopedStaff_CannotFetchOrderOfReassignedCommunity() {
	ctx := context.Background()

	staffID := suite.seedAccount(account.RoleProperty)
	managingOrgID := uuid.New()
	otherOrgID := uuid.New()

	reassignedCommunityID := suite.seedCommunity(&otherOrgID)
	suite.seedScopedMembership(staffID, managingOrgID, reassignedCommunityID)

	hiddenOrderID := suite.seedOrder(&reassignedCommunityID)

	actorID, err := kernel.UUIDFromBytes(staffID[:])
	suite.Require().NoError(err)
	targetID, err := kernel.UUIDFromBytes(hiddenOrderID[:])
	suite.Require().NoError(err)
	getQuery, err := queries.NewGetOrderQuery(targetID, actorID)
	suite.Require().NoError(err)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	_, err = handler.Handle(ctx, getQuery)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VisibilityIntegrationTestSuite) TestPrimaryMember_SeesAllOrdersOfManagedCommunities() {
	ctx := context.Background()

	primaryID := suite.seedAccount(account.RoleProperty)
	managingOrgID := uuid.New()
	otherOrgID := uuid.New()

	managedCommunityID := suite.seedCommunity(&managingOrgID)
	foreignCommunityID := suite.seedCommunity(&otherOrgID)
	suite.seedPrimaryMembership(primaryID, managingOrgID)

	visibleOrderID := suite.seedOrder(&managedCommunityID)
	suite.seedOrder(&foreignCommunityID)

	actorID, err := kernel.UUIDFromBytes(primaryID[:])
	suite.Require().NoError(err)
	listQuery, err := queries.NewGetVisibleOrdersQuery(actorID)
	suite.Require().NoError(err)

	handler := queries.NewGetVisibleOrdersQueryHandler(suite.db)
	responses, err := handler.Handle(ctx, listQuery)
	suite.Require().NoError(err)

	suite.Require().Len(responses, 1)
	suite.Equal(visibleOrderID.String(), responses[0].ID.String())
}

// seedAccount inserts an active account with the given role.
func (suite *VisibilityIntegrationTestSuite) seedAccount(role account.Role) uuid.UUID {
	dto := accountrepo.AccountDTO{
		ID:     uuid.New(),
		Name:   "Robin Vale",
		Phone:  "+15550100",
		Role:   int(role),
		Active: true,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

// seedCommunity inserts a community managed by the given organization.
func (suite *VisibilityIntegrationTestSuite) seedCommunity(propertyOrgID *uuid.UUID) uuid.UUID {
	dto := orgrepo.CommunityDTO{
		ID:            uuid.New(),
		Name:          "Harbor Heights",
		Address:       "12 Harbor Rd",
		PropertyOrgID: propertyOrgID,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

// seedScopedMembership inserts a non-primary property membership pinned to
// one community.
func (suite *VisibilityIntegrationTestSuite) seedScopedMembership(accountID, organizationID, communityID uuid.UUID) {
	dto := orgrepo.MembershipDTO{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Kind:           int(organization.KindProperty),
		AccountID:      accountID,
		IsPrimary:      false,
		SubRole:        int(organization.SubRoleNone),
		CommunityID:    &communityID,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

// seedPrimaryMembership inserts a primary property membership.
func (suite *VisibilityIntegrationTestSuite) seedPrimaryMembership(accountID, organizationID uuid.UUID) {
	dto := orgrepo.MembershipDTO{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Kind:           int(organization.KindProperty),
		AccountID:      accountID,
		IsPrimary:      true,
		SubRole:        int(organization.SubRoleNone),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

// seedOrder inserts a pending order placed from the given community.
func (suite *VisibilityIntegrationTestSuite) seedOrder(communityID *uuid.UUID) uuid.UUID {
	now := time.Now().UTC()
	dto := orderrepo.OrderDTO{
		ID:                   uuid.New(),
		RequesterID:          uuid.New(),
		Address:              "12 Harbor Rd",
		CommunityID:          communityID,
		WasteType:            order.WasteConcrete.String(),
		DeclaredVolume:       10,
		EstimatedChargeCents: 30000,
		Status:               int(order.Pending),
		Version:              0,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func TestVisibilityIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VisibilityIntegrationTestSuite))
}

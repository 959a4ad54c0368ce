package queries

import (
	"context"
	"time"

	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVisibleOrdersQueryHandler lists orders through the visibility filter.
// The filter is translated into the WHERE clause so invisible orders never
// leave the database.
type GetVisibleOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVisibleOrdersQueryHandler creates a handler for visible order queries.
// Requires a GORM database connection for query execution.
func NewGetVisibleOrdersQueryHandler(db *gorm.DB) GetVisibleOrdersQueryHandler {
	return GetVisibleOrdersQueryHandler{db: db}
}

type accountRow struct {
	Role   int
	Active bool
}

// loadAccount fetches the acting account's role, rejecting unknown and
// deactivated accounts before any order row is touched.
func loadAccount(ctx context.Context, db *gorm.DB, actorID kernel.UUID) (accountRow, error) {
	var acc accountRow
	err := db.WithContext(ctx).Raw(`
		SELECT role, active FROM accounts WHERE id = ?
	`, actorID.Bytes()).Scan(&acc).Error
	if err != nil {
		return accountRow{}, err
	}
	if acc.Role == int(account.RoleUnknown) {
		return accountRow{}, errs.NewObjectNotFoundError("account", actorID)
	}
	if !acc.Active {
		return accountRow{}, errs.NewUnauthorizedError("account is deactivated")
	}

	return acc, nil
}

// scopedCommunityGrant is a non-primary property membership pinned to one
// community. The organization is kept so the grant lapses when the community
// is reassigned to another manager.
type scopedCommunityGrant struct {
	organizationID uuid.UUID
	communityID    uuid.UUID
}

type membershipRow struct {
	OrganizationID uuid.UUID
	Kind           int
	IsPrimary      bool
	SubRole        int
	CommunityID    *uuid.UUID
}

type orderRow struct {
	ID                   uuid.UUID
	RequesterID          uuid.UUID
	Address              string
	WasteType            string
	DeclaredVolume       int
	Status               int
	EstimatedChargeCents int64
	FinalChargeCents     *int64
	CreatedAt            time.Time
}

// Handle executes the query. Results are sorted by creation time for
// consistent output.
func (h GetVisibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVisibleOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actorID := query.ActorID().Bytes()

	acc, err := loadAccount(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	if acc.Role != int(account.RoleAdministrator) {
		visibility, visErr := visibilityClause(ctx, h.db, actorID)
		if visErr != nil {
			return nil, visErr
		}
		tx = tx.Where(visibility)
	}

	var rows []orderRow
	if err = tx.Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, respErr := rowToResponse(row)
		if respErr != nil {
			return nil, respErr
		}
		responses = append(responses, response)
	}

	return responses, nil
}

// visibilityClause builds the OR of every membership-derived read grant the
// account holds, starting from the requester's own orders.
func visibilityClause(ctx context.Context, db *gorm.DB, actorID uuid.UUID) (*gorm.DB, error) {
	var memberships []membershipRow
	err := db.WithContext(ctx).Raw(`
		SELECT organization_id, kind, is_primary, sub_role, community_id
		FROM memberships
		WHERE account_id = ?
	`, actorID).Scan(&memberships).Error
	if err != nil {
		return nil, err
	}

	var (
		propertyOrgIDs  []uuid.UUID
		scopedGrants    []scopedCommunityGrant
		transportOrgIDs []uuid.UUID
		driverOrgIDs    []uuid.UUID
		recyclingOrgIDs []uuid.UUID
	)

	for _, m := range memberships {
		switch m.Kind {
		case int(organization.KindProperty):
			if m.IsPrimary {
				propertyOrgIDs = append(propertyOrgIDs, m.OrganizationID)
			} else if m.CommunityID != nil {
				scopedGrants = append(scopedGrants, scopedCommunityGrant{
					organizationID: m.OrganizationID,
					communityID:    *m.CommunityID,
				})
			}
		case int(organization.KindTransport):
			if m.IsPrimary || m.SubRole == int(organization.SubRoleDispatcher) {
				transportOrgIDs = append(transportOrgIDs, m.OrganizationID)
			} else {
				driverOrgIDs = append(driverOrgIDs, m.OrganizationID)
			}
		case int(organization.KindRecycling):
			recyclingOrgIDs = append(recyclingOrgIDs, m.OrganizationID)
		}
	}

	clause := db.Where("requester_id = ?", actorID)
	if len(propertyOrgIDs) > 0 {
		clause = clause.Or(
			"community_id IN (SELECT id FROM communities WHERE property_org_id IN ?)",
			propertyOrgIDs,
		)
	}
	// a scoped grant holds only while the community is still managed by the
	// organization that issued the membership
	for _, grant := range scopedGrants {
		clause = clause.Or(
			"community_id IN (SELECT id FROM communities WHERE id = ? AND property_org_id = ?)",
			grant.communityID, grant.organizationID,
		)
	}
	if len(transportOrgIDs) > 0 {
		clause = clause.Or("transport_org_id IN ?", transportOrgIDs)
	}
	if len(driverOrgIDs) > 0 {
		clause = clause.Or(
			db.Where("transport_org_id IN ?", driverOrgIDs).Where("driver_id = ?", actorID),
		)
	}
	if len(recyclingOrgIDs) > 0 {
		clause = clause.Or("recycling_org_id IN ?", recyclingOrgIDs)
	}

	return clause, nil
}

func rowToResponse(row orderRow) (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	requesterID, err := kernel.UUIDFromBytes(row.RequesterID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	if err = order.Status(row.Status).Validate(); err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:                   id,
		RequesterID:          requesterID,
		Address:              row.Address,
		WasteType:            row.WasteType,
		DeclaredVolume:       row.DeclaredVolume,
		Status:               order.Status(row.Status).String(),
		EstimatedChargeCents: row.EstimatedChargeCents,
		FinalChargeCents:     row.FinalChargeCents,
		CreatedAt:            row.CreatedAt,
	}, nil
}

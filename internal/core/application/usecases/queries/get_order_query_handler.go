package queries

import (
	"context"
	"errors"

	"wastehaul/internal/core/domain/model/account"
	"wastehaul/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order through the visibility
// filter.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound both for a missing
// order and for one the actor may not see.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	acc, err := loadAccount(ctx, h.db, query.ActorID())
	if err != nil {
		return OrderResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Where("id = ?", query.OrderID().Bytes())
	if acc.Role != int(account.RoleAdministrator) {
		visibility, visErr := visibilityClause(ctx, h.db, query.ActorID().Bytes())
		if visErr != nil {
			return OrderResponse{}, visErr
		}
		tx = tx.Where(visibility)
	}

	var row orderRow
	err = tx.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return rowToResponse(row)
}

// Package queries contains read-only operations over the persistence model.
// Query handlers bypass the aggregate layer and read projection rows
// directly, applying the visibility filter as part of the query itself.
package queries

import (
	"errors"
	"time"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var ErrGetVisibleOrdersQueryIsNotConstructed = errors.New(
	"GetVisibleOrdersQuery must be created via NewGetVisibleOrdersQuery constructor",
)

// GetVisibleOrdersQuery retrieves the orders the acting account may see.
// Visibility is the authorization boundary of every read path: requesters
// see their own orders, property members see orders in communities their
// organization manages (narrowed to permitted communities for non-primary
// members), transport members see orders assigned to their organization
// (drivers only their own trips), recycling members see orders assigned to
// their station, and administrators see everything.
type GetVisibleOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVisibleOrdersQuery creates a query for the given account.
func NewGetVisibleOrdersQuery(actorID kernel.UUID) (GetVisibleOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetVisibleOrdersQuery{}, err
	}

	return GetVisibleOrdersQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleOrdersQueryIsNotConstructed)
}

// ActorID returns the account whose visibility applies.
func (q GetVisibleOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// OrderResponse is the projection row returned by order queries.
type OrderResponse struct {
	ID                   kernel.UUID
	RequesterID          kernel.UUID
	Address              string
	WasteType            string
	DeclaredVolume       int
	Status               string
	EstimatedChargeCents int64
	FinalChargeCents     *int64
	CreatedAt            time.Time
}

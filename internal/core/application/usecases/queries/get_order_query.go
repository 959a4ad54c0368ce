package queries

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by identifier, subject to the same
// visibility filter as the order list. An order outside the actor's
// visibility reads as not found, so existence is not leaked.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order on behalf of an account.
func NewGetOrderQuery(orderID, actorID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the account whose visibility applies.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

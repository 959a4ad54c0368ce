package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a transport dispatcher taking a dispatched
// order for their organization. Exactly one dispatcher can win a claim;
// the loser of a concurrent claim gets ConcurrentModification and should
// re-read the order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actorID        kernel.UUID
	transportOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a dispatcher to claim an order.
func NewClaimOrderCommand(orderID, actorID, transportOrgID kernel.UUID) (ClaimOrderCommand, error) {
	claimCommand := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setOrderID(orderID),
		claimCommand.setActorID(actorID),
		claimCommand.setTransportOrgID(transportOrgID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the claiming dispatcher's account.
func (c ClaimOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TransportOrgID returns the organization taking the order.
func (c ClaimOrderCommand) TransportOrgID() kernel.UUID {
	return c.transportOrgID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ClaimOrderCommand) setTransportOrgID(transportOrgID kernel.UUID) error {
	if err := transportOrgID.Validate(); err != nil {
		return err
	}

	c.transportOrgID = transportOrgID
	return nil
}

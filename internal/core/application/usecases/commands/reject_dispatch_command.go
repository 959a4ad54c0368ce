package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var ErrRejectDispatchCommandIsNotConstructed = errors.New(
	"RejectDispatchCommand must be created via NewRejectDispatchCommand constructor",
)

// RejectDispatchCommand represents a transport dispatcher declining a
// dispatched order on behalf of their organization. The order returns to
// pending for re-dispatch and the organization is excluded from its future
// candidate pools.
type RejectDispatchCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actorID        kernel.UUID
	transportOrgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDispatchCommand creates a command for a dispatcher to decline an order.
func NewRejectDispatchCommand(orderID, actorID, transportOrgID kernel.UUID) (RejectDispatchCommand, error) {
	rejectCommand := RejectDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setActorID(actorID),
		rejectCommand.setTransportOrgID(transportOrgID),
	); err != nil {
		return RejectDispatchCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDispatchCommand) Validate() error {
	return c.guard.Validate(ErrRejectDispatchCommandIsNotConstructed)
}

// OrderID returns the order being declined.
func (c RejectDispatchCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the declining dispatcher's account.
func (c RejectDispatchCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TransportOrgID returns the organization declining the order.
func (c RejectDispatchCommand) TransportOrgID() kernel.UUID {
	return c.transportOrgID
}

func (c *RejectDispatchCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectDispatchCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RejectDispatchCommand) setTransportOrgID(transportOrgID kernel.UUID) error {
	if err := transportOrgID.Validate(); err != nil {
		return err
	}

	c.transportOrgID = transportOrgID
	return nil
}

package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var ErrConfirmDepartureCommandIsNotConstructed = errors.New(
	"ConfirmDepartureCommand must be created via NewConfirmDepartureCommand constructor",
)

// ConfirmDepartureCommand represents a property-side confirmation that the
// waste left the community grounds. It annotates the order without moving
// its status.
type ConfirmDepartureCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDepartureCommand creates a departure confirmation command.
func NewConfirmDepartureCommand(orderID, actorID kernel.UUID) (ConfirmDepartureCommand, error) {
	confirmCommand := ConfirmDepartureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setActorID(actorID),
	); err != nil {
		return ConfirmDepartureCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDepartureCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDepartureCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmDepartureCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the confirming account.
func (c ConfirmDepartureCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ConfirmDepartureCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDepartureCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

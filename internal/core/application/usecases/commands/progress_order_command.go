package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/pkg/guard"
)

var ErrProgressOrderCommandIsNotConstructed = errors.New(
	"ProgressOrderCommand must be created via NewProgressOrderCommand constructor",
)

// ProgressOrderCommand represents an actor moving an order to the next
// status on the trip: departure, arrival at the pickup site, the disposal
// leg, and arrival at the station. Arrival transitions carry photo evidence.
type ProgressOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	target    order.Status
	photoRefs []string

	guard guard.ConstructorGuard
}

// NewProgressOrderCommand creates a command to advance an order. The target
// must be a known status; whether it is reachable is decided against the
// order's current state when the command is handled.
func NewProgressOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	target order.Status,
	photoRefs []string,
) (ProgressOrderCommand, error) {
	progressCommand := ProgressOrderCommand{
		photoRefs: photoRefs,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		progressCommand.setOrderID(orderID),
		progressCommand.setActorID(actorID),
		progressCommand.setTarget(target),
	); err != nil {
		return ProgressOrderCommand{}, err
	}

	return progressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressOrderCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrderCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c ProgressOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting account.
func (c ProgressOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested next status.
func (c ProgressOrderCommand) Target() order.Status {
	return c.target
}

// PhotoRefs returns the evidence references attached to the transition.
func (c ProgressOrderCommand) PhotoRefs() []string {
	return c.photoRefs
}

func (c *ProgressOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProgressOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ProgressOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

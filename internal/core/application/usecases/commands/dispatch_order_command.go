package commands

import (
	"errors"

	"wastehaul/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand triggers the automatic dispatch pass: the oldest
// pending order gets a property company and a recycling station assigned.
// This is a parameterless command issued by the dispatch job, not by a user.
type DispatchOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a new command to trigger a dispatch pass.
func NewDispatchOrderCommand() DispatchOrderCommand {
	return DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchOrderCommandIsNotConstructed,
	)
}

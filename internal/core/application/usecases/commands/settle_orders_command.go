package commands

import (
	"errors"

	"wastehaul/internal/pkg/guard"
)

var ErrSettleOrdersCommandIsNotConstructed = errors.New(
	"SettleOrdersCommand must be created via NewSettleOrdersCommand constructor",
)

// SettleOrdersCommand triggers the settlement pass: every weighed order is
// priced against its actual volume, closed, and its refund or charge
// instruction recorded for delivery. Issued by the settlement job.
type SettleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSettleOrdersCommand creates a new command to trigger a settlement pass.
func NewSettleOrdersCommand() SettleOrdersCommand {
	return SettleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SettleOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrSettleOrdersCommandIsNotConstructed,
	)
}

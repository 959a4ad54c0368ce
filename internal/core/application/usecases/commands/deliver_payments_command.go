package commands

import (
	"errors"

	"wastehaul/internal/pkg/guard"
)

var ErrDeliverPaymentsCommandIsNotConstructed = errors.New(
	"DeliverPaymentsCommand must be created via NewDeliverPaymentsCommand constructor",
)

// DeliverPaymentsCommand triggers delivery of pending payment instructions
// to the external payment collaborator. Issued by the payment delivery job.
type DeliverPaymentsCommand struct {
	guard guard.ConstructorGuard
}

// NewDeliverPaymentsCommand creates a new command to trigger a delivery pass.
func NewDeliverPaymentsCommand() DeliverPaymentsCommand {
	return DeliverPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DeliverPaymentsCommand) Validate() error {
	return c.guard.Validate(
		ErrDeliverPaymentsCommandIsNotConstructed,
	)
}

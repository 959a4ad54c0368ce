package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var (
	ErrWeighOrderCommandIsNotConstructed = errors.New(
		"WeighOrderCommand must be created via NewWeighOrderCommand constructor",
	)
	ErrActualVolumeIsInvalid = errors.New("actual volume must be greater than 0")
)

// WeighOrderCommand represents the recycling station recording the measured
// volume of a delivered load. Settlement picks the order up afterwards.
type WeighOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	actualVolume int

	guard guard.ConstructorGuard
}

// NewWeighOrderCommand creates a weigh-in command.
func NewWeighOrderCommand(orderID, actorID kernel.UUID, actualVolume int) (WeighOrderCommand, error) {
	weighCommand := WeighOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		weighCommand.setOrderID(orderID),
		weighCommand.setActorID(actorID),
		weighCommand.setActualVolume(actualVolume),
	); err != nil {
		return WeighOrderCommand{}, err
	}

	return weighCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c WeighOrderCommand) Validate() error {
	return c.guard.Validate(ErrWeighOrderCommandIsNotConstructed)
}

// OrderID returns the order being weighed.
func (c WeighOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the weighing staff account.
func (c WeighOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActualVolume returns the measured volume in whole cubic meters.
func (c WeighOrderCommand) ActualVolume() int {
	return c.actualVolume
}

func (c *WeighOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *WeighOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *WeighOrderCommand) setActualVolume(actualVolume int) error {
	if actualVolume <= 0 {
		return ErrActualVolumeIsInvalid
	}

	c.actualVolume = actualVolume
	return nil
}

package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a dispatcher assigning a driver and vehicle
// from their organization to a claimed order. The vehicle stays available
// until the driver actually departs.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to put a crew on an order.
func NewAssignDriverCommand(orderID, actorID, driverID, vehicleID kernel.UUID) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setActorID(actorID),
		assignCommand.setDriverID(driverID),
		assignCommand.setVehicleID(vehicleID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order receiving the crew.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the assigning dispatcher's account.
func (c AssignDriverCommand) ActorID() kernel.UUID {
	return c.actorID
}

// DriverID returns the driver account to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to assign.
func (c AssignDriverCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

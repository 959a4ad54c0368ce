package commands

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/order"
	"wastehaul/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired       = errors.New("address is required")
	ErrDeclaredVolumeIsInvalid = errors.New("declared volume must be greater than 0")
)

// CreateOrderCommand represents a request to register a new waste pickup.
// The requester declares the waste type and an estimated volume; the charge
// for the declared load is collected up front and reconciled at weigh-in.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, requesterID, "12 Harbor Road", order.WasteConcrete, 5, "gate code 4711")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, settlement)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	requesterID    kernel.UUID
	address        string
	wasteType      order.WasteType
	declaredVolume int
	remarks        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new pickup order.
// Validates identifiers, the address, the waste type, and that the declared
// volume is positive.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	address string,
	wasteType order.WasteType,
	declaredVolume int,
	remarks string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRequesterID(requesterID),
		orderCommand.setAddress(address),
		orderCommand.setWasteType(wasteType),
		orderCommand.setDeclaredVolume(declaredVolume),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the account placing the order.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Address returns the pickup address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// WasteType returns the declared waste classification.
func (c CreateOrderCommand) WasteType() order.WasteType {
	return c.wasteType
}

// DeclaredVolume returns the declared volume in whole cubic meters.
func (c CreateOrderCommand) DeclaredVolume() int {
	return c.declaredVolume
}

// Remarks returns the requester's free-text remarks.
func (c CreateOrderCommand) Remarks() string {
	return c.remarks
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setWasteType(wasteType order.WasteType) error {
	if err := wasteType.Validate(); err != nil {
		return err
	}

	c.wasteType = wasteType
	return nil
}

func (c *CreateOrderCommand) setDeclaredVolume(volume int) error {
	if volume <= 0 {
		return ErrDeclaredVolumeIsInvalid
	}

	c.declaredVolume = volume
	return nil
}

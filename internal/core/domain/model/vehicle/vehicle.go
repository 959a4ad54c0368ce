// Package vehicle models the transport fleet. A vehicle belongs to exactly
// one transport organization and its status is mutated only as a side effect
// of driver assignment and release in the order workflow.
package vehicle

import (
	"errors"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/pkg/errs"
	"wastehaul/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle was not created
	// through NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")

	// ErrPlateNumberIsRequired is returned for an empty plate number.
	ErrPlateNumberIsRequired = errs.NewValueIsRequiredError("plate number")
)

// Vehicle is a truck in a transport company's fleet.
type Vehicle struct {
	id             kernel.UUID
	transportOrgID kernel.UUID
	plateNumber    string
	status         Status

	guard guard.ConstructorGuard
}

// NewVehicle creates an available vehicle for the given transport organization.
func NewVehicle(id, transportOrgID kernel.UUID, plateNumber string) (*Vehicle, error) {
	v := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		transportOrgID.Validate(),
	); err != nil {
		return nil, err
	}
	if plateNumber == "" {
		return nil, ErrPlateNumberIsRequired
	}

	v.id = id
	v.transportOrgID = transportOrgID
	v.plateNumber = plateNumber
	return v, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(id, transportOrgID kernel.UUID, plateNumber string, status Status) (*Vehicle, error) {
	v, err := NewVehicle(id, transportOrgID, plateNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	v.status = status
	return v, nil
}

// Validate ensures the vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// TransportOrgID returns the owning transport organization.
func (v *Vehicle) TransportOrgID() kernel.UUID {
	return v.transportOrgID
}

// PlateNumber returns the license plate.
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// Status returns the current operational status.
func (v *Vehicle) Status() Status {
	return v.status
}

// IsAvailable reports whether the vehicle can be assigned to an order.
func (v *Vehicle) IsAvailable() bool {
	return v.status == Available
}

// BelongsTo reports whether the vehicle is owned by the given transport
// organization.
func (v *Vehicle) BelongsTo(orgID kernel.UUID) bool {
	return v.transportOrgID.IsEqual(orgID)
}

// MarkInUse flips the vehicle to InUse when its assigned driver departs for
// pickup. Fails with ResourceBusy if the vehicle is not available.
func (v *Vehicle) MarkInUse() error {
	if v.status != Available {
		return errs.NewResourceBusyError("vehicle", v.id.String())
	}
	v.status = InUse
	return nil
}

// Release returns an in-use vehicle to Available when the load arrives at
// the disposal station. Releasing a vehicle in maintenance or out of service
// is not a workflow operation and is rejected.
func (v *Vehicle) Release() error {
	if v.status != InUse {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status",
			errors.New(v.status.String()+" vehicle cannot be released"))
	}
	v.status = Available
	return nil
}

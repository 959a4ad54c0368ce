package vehicle_test

import (
	"testing"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/vehicle"
	"wastehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVehicle(t *testing.T, transportOrgID kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), transportOrgID, "AB 12345")
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("should create available vehicle with valid input", func(t *testing.T) {
		id := kernel.NewUUID()
		transportOrgID := kernel.NewUUID()

		v, err := vehicle.NewVehicle(id, transportOrgID, "AB 12345")

		require.NoError(t, err)
		assert.Equal(t, id, v.ID())
		assert.Equal(t, transportOrgID, v.TransportOrgID())
		assert.Equal(t, "AB 12345", v.PlateNumber())
		assert.Equal(t, vehicle.Available, v.Status())
		assert.True(t, v.IsAvailable())
		assert.True(t, v.BelongsTo(transportOrgID))
		assert.False(t, v.BelongsTo(kernel.NewUUID()))
		assert.NoError(t, v.Validate())
	})

	t.Run("should return error with invalid input", func(t *testing.T) {
		testCases := []struct {
			name           string
			id             kernel.UUID
			transportOrgID kernel.UUID
			plateNumber    string
			expected       error
		}{
			{
				name:           "zero vehicle id",
				id:             kernel.UUID{},
				transportOrgID: kernel.NewUUID(),
				plateNumber:    "AB 12345",
				expected:       kernel.ErrUUIDIsNotConstructed,
			},
			{
				name:           "zero transport org id",
				id:             kernel.NewUUID(),
				transportOrgID: kernel.UUID{},
				plateNumber:    "AB 12345",
				expected:       kernel.ErrUUIDIsNotConstructed,
			},
			{
				name:           "empty plate number",
				id:             kernel.NewUUID(),
				transportOrgID: kernel.NewUUID(),
				plateNumber:    "",
				expected:       vehicle.ErrPlateNumberIsRequired,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				v, err := vehicle.NewVehicle(tc.id, tc.transportOrgID, tc.plateNumber)

				assert.Nil(t, v)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("should restore vehicle in any valid status", func(t *testing.T) {
		for _, status := range []vehicle.Status{
			vehicle.Available, vehicle.InUse, vehicle.Maintenance, vehicle.OutOfService,
		} {
			v, err := vehicle.RestoreVehicle(kernel.NewUUID(), kernel.NewUUID(), "AB 12345", status)

			require.NoError(t, err)
			assert.Equal(t, status, v.Status())
		}
	})

	t.Run("should return error with unknown status", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle(kernel.NewUUID(), kernel.NewUUID(), "AB 12345", vehicle.StatusUnknown)

		assert.Nil(t, v)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVehicle_MarkInUse(t *testing.T) {
	t.Run("should flip available vehicle to in use", func(t *testing.T) {
		v := createVehicle(t, kernel.NewUUID())

		err := v.MarkInUse()

		require.NoError(t, err)
		assert.Equal(t, vehicle.InUse, v.Status())
		assert.False(t, v.IsAvailable())
	})

	t.Run("should return error when vehicle is not available", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.InUse, vehicle.Maintenance, vehicle.OutOfService} {
			v, err := vehicle.RestoreVehicle(kernel.NewUUID(), kernel.NewUUID(), "AB 12345", status)
			require.NoError(t, err)

			err = v.MarkInUse()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrResourceBusy)
			assert.Equal(t, status, v.Status())
		}
	})
}

func TestVehicle_Release(t *testing.T) {
	t.Run("should return in use vehicle to available", func(t *testing.T) {
		v := createVehicle(t, kernel.NewUUID())
		require.NoError(t, v.MarkInUse())

		err := v.Release()

		require.NoError(t, err)
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should return error when vehicle is not in use", func(t *testing.T) {
		for _, status := range []vehicle.Status{vehicle.Available, vehicle.Maintenance, vehicle.OutOfService} {
			v, err := vehicle.RestoreVehicle(kernel.NewUUID(), kernel.NewUUID(), "AB 12345", status)
			require.NoError(t, err)

			err = v.Release()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, status, v.Status())
		}
	})
}

func TestVehicle_Validate(t *testing.T) {
	var v *vehicle.Vehicle
	assert.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)

	v = &vehicle.Vehicle{}
	assert.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "available", vehicle.Available.String())
	assert.Equal(t, "in_use", vehicle.InUse.String())
	assert.Equal(t, "maintenance", vehicle.Maintenance.String())
	assert.Equal(t, "out_of_service", vehicle.OutOfService.String())
	assert.Equal(t, "unknown", vehicle.StatusUnknown.String())
	assert.Equal(t, "unknown", vehicle.Status(99).String())
}

package organization_test

import (
	"testing"

	"wastehaul/internal/core/domain/model/kernel"
	"wastehaul/internal/core/domain/model/organization"
	"wastehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMembership(t *testing.T) {
	t.Run("should create memberships the kind allows", func(t *testing.T) {
		testCases := []struct {
			name      string
			kind      organization.Kind
			isPrimary bool
			subRole   organization.SubRole
		}{
			{
				name:      "primary property member",
				kind:      organization.KindProperty,
				isPrimary: true,
				subRole:   organization.SubRoleNone,
			},
			{
				name:      "non-primary property member",
				kind:      organization.KindProperty,
				isPrimary: false,
				subRole:   organization.SubRoleNone,
			},
			{
				name:      "transport dispatcher",
				kind:      organization.KindTransport,
				isPrimary: false,
				subRole:   organization.SubRoleDispatcher,
			},
			{
				name:      "transport driver",
				kind:      organization.KindTransport,
				isPrimary: false,
				subRole:   organization.SubRoleDriver,
			},
			{
				name:      "primary transport member",
				kind:      organization.KindTransport,
				isPrimary: true,
				subRole:   organization.SubRoleNone,
			},
			{
				name:      "recycling weigher",
				kind:      organization.KindRecycling,
				isPrimary: false,
				subRole:   organization.SubRoleWeigher,
			},
			{
				name:      "plain recycling member",
				kind:      organization.KindRecycling,
				isPrimary: false,
				subRole:   organization.SubRoleNone,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				orgID := kernel.NewUUID()
				accountID := kernel.NewUUID()

				membership, err := organization.NewMembership(
					kernel.NewUUID(), orgID, tc.kind, accountID, tc.isPrimary, tc.subRole, nil)

				require.NoError(t, err)
				assert.Equal(t, orgID, membership.OrganizationID())
				assert.Equal(t, accountID, membership.AccountID())
				assert.Equal(t, tc.kind, membership.Kind())
				assert.Equal(t, tc.isPrimary, membership.IsPrimary())
				assert.Equal(t, tc.subRole, membership.SubRole())
				assert.Nil(t, membership.CommunityID())
			})
		}
	})

	t.Run("should reject sub-roles the kind forbids", func(t *testing.T) {
		testCases := []struct {
			name      string
			kind      organization.Kind
			isPrimary bool
			subRole   organization.SubRole
		}{
			{
				name:      "primary member with sub-role",
				kind:      organization.KindTransport,
				isPrimary: true,
				subRole:   organization.SubRoleDispatcher,
			},
			{
				name:      "non-primary transport member without sub-role",
				kind:      organization.KindTransport,
				isPrimary: false,
				subRole:   organization.SubRoleNone,
			},
			{
				name:      "property member with driver sub-role",
				kind:      organization.KindProperty,
				isPrimary: false,
				subRole:   organization.SubRoleDriver,
			},
			{
				name:      "property member with weigher sub-role",
				kind:      organization.KindProperty,
				isPrimary: false,
				subRole:   organization.SubRoleWeigher,
			},
			{
				name:      "recycling member with dispatcher sub-role",
				kind:      organization.KindRecycling,
				isPrimary: false,
				subRole:   organization.SubRoleDispatcher,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				membership, err := organization.NewMembership(
					kernel.NewUUID(), kernel.NewUUID(), tc.kind, kernel.NewUUID(),
					tc.isPrimary, tc.subRole, nil)

				assert.Nil(t, membership)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should scope non-primary property member to a community", func(t *testing.T) {
		communityID := kernel.NewUUID()

		membership, err := organization.NewMembership(
			kernel.NewUUID(), kernel.NewUUID(), organization.KindProperty, kernel.NewUUID(),
			false, organization.SubRoleNone, &communityID)

		require.NoError(t, err)
		require.NotNil(t, membership.CommunityID())
		assert.Equal(t, communityID, *membership.CommunityID())
	})

	t.Run("should reject community scope outside non-primary property members", func(t *testing.T) {
		communityID := kernel.NewUUID()

		testCases := []struct {
			name      string
			kind      organization.Kind
			isPrimary bool
			subRole   organization.SubRole
		}{
			{
				name:      "primary property member",
				kind:      organization.KindProperty,
				isPrimary: true,
				subRole:   organization.SubRoleNone,
			},
			{
				name:      "transport dispatcher",
				kind:      organization.KindTransport,
				isPrimary: false,
				subRole:   organization.SubRoleDispatcher,
			},
			{
				name:      "recycling weigher",
				kind:      organization.KindRecycling,
				isPrimary: false,
				subRole:   organization.SubRoleWeigher,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				membership, err := organization.NewMembership(
					kernel.NewUUID(), kernel.NewUUID(), tc.kind, kernel.NewUUID(),
					tc.isPrimary, tc.subRole, &communityID)

				assert.Nil(t, membership)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should return error with zero identifiers", func(t *testing.T) {
		membership, err := organization.NewMembership(
			kernel.UUID{}, kernel.NewUUID(), organization.KindProperty, kernel.NewUUID(),
			false, organization.SubRoleNone, nil)

		assert.Nil(t, membership)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestMembership_Validate(t *testing.T) {
	var membership *organization.Membership
	assert.ErrorIs(t, membership.Validate(), organization.ErrMembershipIsNotConstructed)

	membership = &organization.Membership{}
	assert.ErrorIs(t, membership.Validate(), organization.ErrMembershipIsNotConstructed)
}

func TestSubRole_ValidateFor(t *testing.T) {
	assert.NoError(t, organization.SubRoleNone.ValidateFor(organization.KindProperty))
	assert.NoError(t, organization.SubRoleDispatcher.ValidateFor(organization.KindTransport))
	assert.NoError(t, organization.SubRoleDriver.ValidateFor(organization.KindTransport))
	assert.NoError(t, organization.SubRoleNone.ValidateFor(organization.KindRecycling))
	assert.NoError(t, organization.SubRoleWeigher.ValidateFor(organization.KindRecycling))

	assert.Error(t, organization.SubRoleNone.ValidateFor(organization.KindTransport))
	assert.Error(t, organization.SubRoleWeigher.ValidateFor(organization.KindTransport))
	assert.Error(t, organization.SubRoleDispatcher.ValidateFor(organization.KindProperty))
	assert.Error(t, organization.SubRoleDriver.ValidateFor(organization.KindRecycling))
}

func TestSubRole_String(t *testing.T) {
	assert.Equal(t, "none", organization.SubRoleNone.String())
	assert.Equal(t, "dispatcher", organization.SubRoleDispatcher.String())
	assert.Equal(t, "driver", organization.SubRoleDriver.String())
	assert.Equal(t, "weigher", organization.SubRoleWeigher.String())
	assert.Equal(t, "unknown", organization.SubRole(99).String())
}

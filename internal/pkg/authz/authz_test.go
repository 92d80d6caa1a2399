package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

func TestAllow_AdminManagesEverything(t *testing.T) {
	actions := []Action{
		ActionManageFacilities,
		ActionManagePrices,
		ActionManageSettings,
		ActionManageDisciplines,
		ActionCancelAnyBooking,
		ActionListAllBookings,
		ActionExportTables,
	}
	for _, a := range actions {
		assert.True(t, Allow(domain.RoleAdmin, a), "admin should be allowed %s", a)
	}
}

func TestAllow_UserDeniedAdminActions(t *testing.T) {
	denied := []Action{
		ActionManageFacilities,
		ActionManagePrices,
		ActionManageSettings,
		ActionManageDisciplines,
		ActionCancelAnyBooking,
		ActionListAllBookings,
		ActionExportTables,
	}
	for _, a := range denied {
		assert.False(t, Allow(domain.RoleUser, a), "user should be denied %s", a)
	}

	assert.True(t, Allow(domain.RoleUser, ActionCreateBooking))
	assert.True(t, Allow(domain.RoleUser, ActionCancelOwnBooking))
}

func TestAllow_UnknownRoleDenied(t *testing.T) {
	assert.False(t, Allow(domain.Role("guest"), ActionCreateBooking))
	assert.False(t, Allow(domain.RoleAdmin, Action("unknown:action")))
}

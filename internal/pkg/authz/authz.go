// Package authz holds the single authorization policy for both services.
// Handlers never hardcode role checks; they ask Allow(role, action).
package authz

import "github.com/kokolodziejska/zagrane/internal/domain"

type Action string

const (
	ActionManageFacilities  Action = "facilities:manage"
	ActionManagePrices      Action = "prices:manage"
	ActionManageSettings    Action = "settings:manage"
	ActionManageDisciplines Action = "disciplines:manage"
	ActionCancelAnyBooking  Action = "reservations:cancel_any"
	ActionListAllBookings   Action = "reservations:list_all"
	ActionCreateBooking     Action = "reservations:create"
	ActionCancelOwnBooking  Action = "reservations:cancel_own"
	ActionViewBudgetTables  Action = "budget:view"
	ActionSubmitRowData     Action = "budget:submit_rows"
	ActionExportTables      Action = "budget:export"
)

var policy = map[domain.Role]map[Action]bool{
	domain.RoleUser: {
		ActionCreateBooking:    true,
		ActionCancelOwnBooking: true,
		ActionViewBudgetTables: true,
		ActionSubmitRowData:    true,
	},
	domain.RoleAdmin: {
		ActionManageFacilities:  true,
		ActionManagePrices:      true,
		ActionManageSettings:    true,
		ActionManageDisciplines: true,
		ActionCancelAnyBooking:  true,
		ActionListAllBookings:   true,
		ActionCreateBooking:     true,
		ActionCancelOwnBooking:  true,
		ActionViewBudgetTables:  true,
		ActionSubmitRowData:     true,
		ActionExportTables:      true,
	},
}

// Allow reports whether role may perform action. Unknown roles and unknown
// actions are denied.
func Allow(role domain.Role, action Action) bool {
	return policy[role][action]
}

// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// Roles form a closed set; view gating must go through the capability
// methods below rather than comparing raw strings.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "Customer"
	// RoleKitchenManager indicates kitchen staff working the incoming and cooking columns.
	RoleKitchenManager Role = "KitchenManager"
	// RoleCounterStaff indicates counter staff handing completed orders to customers.
	RoleCounterStaff Role = "CounterStaff"
	// RoleSuperAdmin indicates the platform administrator; sees and acts on everything.
	RoleSuperAdmin Role = "SuperAdmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleKitchenManager, RoleCounterStaff, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may open the live-queue dashboard at all.
func (r Role) IsStaff() bool {
	return slices.Contains([]Role{RoleKitchenManager, RoleCounterStaff, RoleSuperAdmin}, r)
}

// IsKitchen reports whether the role works the incoming and cooking columns.
func (r Role) IsKitchen() bool {
	return r == RoleKitchenManager || r == RoleSuperAdmin
}

// IsCounter reports whether the role works the ready-for-pickup column.
func (r Role) IsCounter() bool {
	return r == RoleCounterStaff || r == RoleSuperAdmin
}

// IsAdmin reports whether the role may use the super-admin console.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin
}

// CanAdvanceFrom reports whether the role is allowed to move an order out
// of the given status. Kitchen owns Paid and Preparing, counter owns Ready;
// the picked-up state is terminal and owned by nobody.
func (r Role) CanAdvanceFrom(status OrderStatus) bool {
	switch status {
	case StatusPaid, StatusPreparing:
		return r.IsKitchen()
	case StatusReady:
		return r.IsCounter()
	default:
		return false
	}
}

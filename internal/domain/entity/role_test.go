package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	for _, role := range []Role{RoleCustomer, RoleKitchenManager, RoleCounterStaff, RoleSuperAdmin} {
		assert.True(t, role.IsValid())
	}
	assert.False(t, Role("Manager").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role      Role
		isStaff   bool
		isKitchen bool
		isCounter bool
		isAdmin   bool
	}{
		{RoleCustomer, false, false, false, false},
		{RoleKitchenManager, true, true, false, false},
		{RoleCounterStaff, true, false, true, false},
		{RoleSuperAdmin, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.isStaff, tt.role.IsStaff())
			assert.Equal(t, tt.isKitchen, tt.role.IsKitchen())
			assert.Equal(t, tt.isCounter, tt.role.IsCounter())
			assert.Equal(t, tt.isAdmin, tt.role.IsAdmin())
		})
	}
}

func TestRole_CanAdvanceFrom(t *testing.T) {
	// Kitchen owns the first two columns.
	assert.True(t, RoleKitchenManager.CanAdvanceFrom(StatusPaid))
	assert.True(t, RoleKitchenManager.CanAdvanceFrom(StatusPreparing))
	assert.False(t, RoleKitchenManager.CanAdvanceFrom(StatusReady))

	// Counter owns the pickup handoff only.
	assert.False(t, RoleCounterStaff.CanAdvanceFrom(StatusPaid))
	assert.False(t, RoleCounterStaff.CanAdvanceFrom(StatusPreparing))
	assert.True(t, RoleCounterStaff.CanAdvanceFrom(StatusReady))

	// Admin can do everything; customers nothing.
	for _, status := range []OrderStatus{StatusPaid, StatusPreparing, StatusReady} {
		assert.True(t, RoleSuperAdmin.CanAdvanceFrom(status))
		assert.False(t, RoleCustomer.CanAdvanceFrom(status))
	}

	// Nobody moves a terminal order.
	assert.False(t, RoleSuperAdmin.CanAdvanceFrom(StatusPickedUp))
}

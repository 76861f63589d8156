// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the authenticated-user snapshot held by the kiosk for the
// lifetime of a session. The backend owns the record; the kiosk only
// caches what it needs to render views and gate actions.
type User struct {
	ID        string    // Backend identifier of the user record.
	Name      string    // Display name shown in the navbar and on staff cards.
	Email     string    // Login identifier.
	Role      Role      // Immutable for the session; assigned by the backend.
	Coins     int64     // Loyalty-coin balance. Non-negative; reconciled only by checkout or a profile refresh.
	UpdatedAt time.Time // When this snapshot was last refreshed from the backend.
}

// Clone returns a copy so callers can hand snapshots out without
// exposing the state container's instance to mutation.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u

	return &clone
}

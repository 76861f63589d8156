package service

import "time"

// SessionInspector exposes the transport's view of the backend session
// credential. The expiry is decoded without verification and is
// display-only; authorization stays server-enforced.
type SessionInspector interface {
	// SessionExpiresAt returns the session-cookie expiry, if a session
	// credential with a readable expiry is held.
	SessionExpiresAt() (time.Time, bool)
}

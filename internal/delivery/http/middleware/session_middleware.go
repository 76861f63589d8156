package middleware

import (
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/state"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware gates routes on the device session held in the state
// store. The backend re-checks authorization on every upstream call;
// this layer only keeps unauthorized views from rendering at all.
type SessionMiddleware struct {
	store *state.Store
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(store *state.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// RequireSession rejects requests when nobody is signed in on the device.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.store.User(); !ok {
			return domainerrors.ErrNotAuthenticated
		}

		return next(c)
	}
}

// RequireStaff admits kitchen, counter and admin roles.
func (m *SessionMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, entity.Role.IsStaff)
}

// RequireAdmin admits the super admin only.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, entity.Role.IsAdmin)
}

func (m *SessionMiddleware) require(next echo.HandlerFunc, allowed func(entity.Role) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := m.store.User()
		if !ok {
			return domainerrors.ErrNotAuthenticated
		}
		if !allowed(user.Role) {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

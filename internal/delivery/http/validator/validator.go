// Package validator plugs go-playground/validator into echo's Validator
// interface so handlers can call c.Validate on bound DTOs.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs the struct tags and maps failures to a 400 so the error
// middleware renders them without treating them as internal errors.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/http/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for menu browsing handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// Browse returns the menu filtered by the search and category query
// parameters.
func (h *MenuHandler) Browse(c echo.Context) error {
	var query *usecase.BrowseQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid browse query")
	}

	view, err := h.uc.Browse(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ItemDetails returns a single menu item with its reviews.
func (h *MenuHandler) ItemDetails(c echo.Context) error {
	item, err := h.uc.ItemDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// CreateItem handles the admin menu item creation request.
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var input *usecase.CreateMenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created")
}

// SubmitReview attaches a review to a menu item.
func (h *MenuHandler) SubmitReview(c echo.Context) error {
	var input *usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	input.MenuItemID = c.Param("id")
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SubmitReview(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Review submitted")
}

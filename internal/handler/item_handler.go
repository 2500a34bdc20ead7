package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petapi/internal/auth"
	apperrors "petapi/internal/errors"
	"petapi/internal/service"
)

// ItemHandler bundles item HTTP handlers.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a handler layer.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents an item creation request. The owner is
// never part of the request; it comes from the authenticated identity.
type CreateItemRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
}

// CreateItem godoc
// @Summary Create item for the authenticated user
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /items/ [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.itemService.CreateItem(c.Request().Context(), user, req.Title, req.Description)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListItems godoc
// @Summary List items
// @Description Retrieve items with skip/limit pagination
// @Tags items
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} model.Item
// @Router /items/ [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	offset, limit := pagination(c)
	items, err := h.itemService.ListItems(c.Request().Context(), offset, limit)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, items)
}

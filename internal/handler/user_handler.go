package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "petapi/internal/errors"
	"petapi/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// CreateUser godoc
// @Summary Register a new user
// @Description Register a new user with email, username and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Registration data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/ [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := h.userService.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Description Retrieve users with skip/limit pagination
// @Tags users
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} model.User
// @Router /users/ [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	offset, limit := pagination(c)
	users, err := h.userService.ListUsers(c.Request().Context(), offset, limit)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, users)
}

package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"petapi/internal/auth"
	apperrors "petapi/internal/errors"
	"petapi/internal/handler"
	"petapi/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	itemHandler *handler.ItemHandler,
	authHandler *handler.AuthHandler,
	jwtService *auth.JWTService,
	users repository.UserRepository,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the Pet Project API"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/users/", userHandler.CreateUser)
	e.GET("/users/", userHandler.ListUsers)
	e.GET("/users/:id", userHandler.GetUser)
	e.GET("/items/", itemHandler.ListItems)
	e.POST("/auth/token", authHandler.Token)

	// Secured routes (require a valid bearer token resolving to a stored user)
	e.POST("/items/", itemHandler.CreateItem,
		auth.JWTMiddleware(jwtService), auth.LoadUser(users))
}

// HTTPErrorHandler renders every error as {"detail": "..."} with the
// mapped status code.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "Internal server error"

	var appErr *apperrors.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		detail = appErr.Message
	case errors.As(err, &echoErr):
		status = echoErr.Code
		switch m := echoErr.Message.(type) {
		case string:
			detail = m
		case error:
			detail = m.Error()
		default:
			detail = http.StatusText(status)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, apperrors.ErrorResponse{Detail: detail})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

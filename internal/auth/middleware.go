package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "petapi/internal/errors"
	"petapi/internal/model"
	"petapi/internal/repository"
)

const userContextKey = "current_user"

// JWTMiddleware verifies the bearer token from the Authorization header.
// Missing, malformed, tampered and expired tokens are all rejected with a
// 401 before the handler runs.
func JWTMiddleware(svc *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return svc.ValidateToken(auth)
		},
	})
}

// LoadUser resolves the verified token's subject to a stored user and puts
// it in the request context. A subject with no matching row (user never
// existed, or token outlived the row) is rejected the same way as an
// invalid token.
func LoadUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by LoadUser for this request.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

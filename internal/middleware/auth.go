package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"lenscraft-server/internal/model"
	"lenscraft-server/internal/service"
)

const (
	emailKey = "email"
	userKey  = "user"
)

// AuthMiddleware verifies the bearer token and exposes the caller's email on the context.
func AuthMiddleware(tokens service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return fmt.Errorf("%w: missing bearer token", service.ErrUnauthorized)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return err
			}

			c.Set(emailKey, claims.Email)
			return next(c)
		}
	}
}

// RequireRole lets the request through only if the authenticated user holds one of roles.
func RequireRole(users service.UserService, roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := users.Get(c.Request().Context(), Email(c))
			if errors.Is(err, service.ErrNotFound) {
				return fmt.Errorf("%w: unknown user", service.ErrForbidden)
			}
			if err != nil {
				return err
			}

			for _, role := range roles {
				if user.Role == role {
					c.Set(userKey, user)
					return next(c)
				}
			}
			return fmt.Errorf("%w: requires role %v", service.ErrForbidden, roles)
		}
	}
}

func Email(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}

// User is set by RequireRole.
func User(c echo.Context) *model.User {
	user, _ := c.Get(userKey).(*model.User)
	return user
}

// RequireSelf fails unless email belongs to the authenticated caller.
func RequireSelf(c echo.Context, email string) error {
	if !strings.EqualFold(Email(c), email) {
		return fmt.Errorf("%w: bad auth", service.ErrForbidden)
	}
	return nil
}

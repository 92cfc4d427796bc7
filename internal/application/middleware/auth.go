package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/application/security"
	"todolist-api/pkg/msg"
)

const bearerPrefix = "Bearer "

// Authenticated rejects requests without a valid bearer token and stores the
// reconstructed principal in the echo context for the handler.
func Authenticated(codec *security.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": msg.GetMessage("auth.error.missing-token"),
					"login": "/login",
				})
			}

			principal, err := codec.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": msg.GetMessage("auth.error.invalid-token"),
					"login": "/login",
				})
			}

			c.Set(security.PrincipalContextKey, principal)
			return next(c)
		}
	}
}

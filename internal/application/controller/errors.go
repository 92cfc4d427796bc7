package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/application/security"
	"todolist-api/internal/domain/apperror"
	"todolist-api/pkg/msg"
)

// writeError maps a domain error onto the single-request error response. No
// operation is retried and no failure is fatal to the process.
func writeError(c echo.Context, err error) error {
	switch {
	case apperror.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperror.IsNullEntity(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case apperror.IsAccessDenied(err):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func denied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{
		"error": msg.GetMessage("error.access-denied"),
	})
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": msg.GetMessage("auth.error.missing-token"),
		"login": "/login",
	})
}

func invalidParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": "Invalid " + name + " parameter",
	})
}

// requirePrincipal pulls the request principal set by the authentication
// middleware; ok is false when the route was reached without one.
func requirePrincipal(c echo.Context) (security.Principal, bool) {
	return security.PrincipalFrom(c)
}

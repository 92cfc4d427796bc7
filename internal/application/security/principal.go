package security

import (
	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
)

const (
	// AdminAuthority is the single authority carried by admin principals.
	AdminAuthority = "ROLE_ADMIN"

	authorityPrefix = "ROLE_"

	// PrincipalContextKey is where the authentication middleware stores the
	// request principal in the echo context.
	PrincipalContextKey = "principal"
)

// Principal is the authenticated actor making a request. It carries a numeric
// id and exactly one role-derived authority. Functional is always true for
// existing users: there is no account-lock or expiry feature.
type Principal struct {
	ID         uint
	FirstName  string
	Username   string
	Password   string
	Functional bool
	Authority  string
}

// NewPrincipal maps a stored user onto an authentication principal. The email
// doubles as the username and the authority is "ROLE_" plus the role name.
func NewPrincipal(user entity.User) Principal {
	return Principal{
		ID:         user.ID,
		FirstName:  user.FirstName,
		Username:   user.Email,
		Password:   user.Password,
		Functional: true,
		Authority:  authorityPrefix + user.Role.Name,
	}
}

func (p Principal) IsAdmin() bool {
	return p.Authority == AdminAuthority
}

// PrincipalFrom extracts the request principal set by the authentication
// middleware.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(PrincipalContextKey).(Principal)
	return principal, ok
}

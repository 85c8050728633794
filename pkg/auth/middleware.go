package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// RequireAdmin rejects requests that don't carry a valid admin session
// cookie. All mutating routes sit behind this.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		if _, err := m.authService.ValidateToken(cookie.Value); err != nil {
			return errcodes.Unauthorized("Invalid or expired session")
		}

		return next(c)
	}
}

package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/tsundokuhq/tsundoku/pkg/config"
)

// RegisterRoutes registers all auth routes and returns the service so the
// caller can build middleware from it.
func RegisterRoutes(e *echo.Echo, cfg *config.Config) (*Service, error) {
	authService, err := NewService(cfg)
	if err != nil {
		return nil, err
	}

	h := &handler{
		authService: authService,
	}

	g := e.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/session", h.session)

	return authService, nil
}

package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "tsundoku_session"
	// CookieMaxAge is how long the cookie is valid.
	CookieMaxAge = 7 * 24 * time.Hour // 7 days
)

type handler struct {
	authService *Service
}

func sessionCookie(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	}
}

// login exchanges the admin password for a session cookie.
func (h *handler) login(c echo.Context) error {
	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if err := h.authService.Authenticate(params.Password); err != nil {
		return err
	}

	token, err := h.authService.GenerateToken()
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(sessionCookie(c, token, int(CookieMaxAge.Seconds())))

	return errors.WithStack(c.JSON(http.StatusOK, SessionResponse{Authenticated: true}))
}

// logout clears the session cookie.
func (h *handler) logout(c echo.Context) error {
	c.SetCookie(sessionCookie(c, "", -1))

	return errors.WithStack(c.JSON(http.StatusOK, SessionResponse{Authenticated: false}))
}

// session reports whether the current cookie is a valid admin session.
func (h *handler) session(c echo.Context) error {
	authenticated := false
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		if _, err := h.authService.ValidateToken(cookie.Value); err == nil {
			authenticated = true
		}
	}

	return errors.WithStack(c.JSON(http.StatusOK, SessionResponse{Authenticated: authenticated}))
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundokuhq/tsundoku/pkg/config"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
)

func newMiddlewareContext(t *testing.T, cookie *http.Cookie) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAdminMissingCookie(t *testing.T) {
	t.Parallel()

	svc, err := NewService(config.NewForTest())
	require.NoError(t, err)
	m := NewMiddleware(svc)

	c := newMiddlewareContext(t, nil)
	err = m.RequireAdmin(okHandler)(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.Unauthorized("Authentication required")))
}

func TestRequireAdminInvalidToken(t *testing.T) {
	t.Parallel()

	svc, err := NewService(config.NewForTest())
	require.NoError(t, err)
	m := NewMiddleware(svc)

	c := newMiddlewareContext(t, &http.Cookie{Name: CookieName, Value: "junk"})
	err = m.RequireAdmin(okHandler)(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.Unauthorized("Invalid or expired session")))
}

func TestRequireAdminValidToken(t *testing.T) {
	t.Parallel()

	svc, err := NewService(config.NewForTest())
	require.NoError(t, err)
	m := NewMiddleware(svc)

	token, err := svc.GenerateToken()
	require.NoError(t, err)

	c := newMiddlewareContext(t, &http.Cookie{Name: CookieName, Value: token})
	assert.NoError(t, m.RequireAdmin(okHandler)(c))
}

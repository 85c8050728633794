package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundokuhq/tsundoku/pkg/errcodes"
)

type testPayload struct {
	Name  string  `json:"name" validate:"required,max=20"`
	Shelf string  `json:"shelf" default:"watchlist" validate:"oneof=watchlist currentlyReading read"`
	Date  *string `json:"date" validate:"omitempty,date"`
}

func bindJSON(t *testing.T, body string, i interface{}) error {
	t.Helper()

	b, err := New()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return b.Bind(i, c)
}

func TestBindAppliesDefaults(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindJSON(t, `{"name":"Dune"}`, &p)
	require.NoError(t, err)
	assert.Equal(t, "Dune", p.Name)
	assert.Equal(t, "watchlist", p.Shelf)
}

func TestBindRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindJSON(t, `{"name":"Dune","bogus":true}`, &p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.UnknownParameter("bogus")))
}

func TestBindValidates(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindJSON(t, `{"shelf":"read"}`, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name" is required`)

	p = testPayload{}
	err = bindJSON(t, `{"name":"Dune","shelf":"bogus"}`, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of the following")

	p = testPayload{}
	err = bindJSON(t, `{"name":"Dune","date":"junk"}`, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestBindEmptyBody(t *testing.T) {
	t.Parallel()

	p := testPayload{}
	err := bindJSON(t, "", &p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcodes.EmptyRequestBody()))
}

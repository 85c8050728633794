package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundokuhq/tsundoku/pkg/config"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	svc, err := NewService(cfg)
	require.NoError(t, err)

	assert.NoError(t, svc.Authenticate(cfg.AdminPassword))
	assert.Error(t, svc.Authenticate("wrong-password"))
	assert.Error(t, svc.Authenticate(""))
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	svc, err := NewService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminSubject, claims.Subject)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	svc, err := NewService(cfg)
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	cfg := config.NewForTest()
	svc, err := NewService(cfg)
	require.NoError(t, err)

	otherCfg := config.NewForTest()
	otherCfg.JWTSecret = "a-different-secret"
	other, err := NewService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

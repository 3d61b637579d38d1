package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/services"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/SscSPs/camp_ledger_app/internal/repositories/memory"
	"github.com/SscSPs/camp_ledger_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "camp-ledger-test",
	}
}

func TestAuthService_LoginBeforePasswordIsSet(t *testing.T) {
	svc := services.NewAuthService(testAuthConfig(), memory.NewStore())

	_, _, err := svc.Login(context.Background(), "anything")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_SetPasswordAndLogin(t *testing.T) {
	ctx := context.Background()
	cfg := testAuthConfig()
	svc := services.NewAuthService(cfg, memory.NewStore())

	require.NoError(t, svc.SetPassword(ctx, "camp2024"))

	_, _, err := svc.Login(ctx, "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	token, expiresAt, err := svc.Login(ctx, "camp2024")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret, cfg.JWTIssuer)
	require.NoError(t, err)
	assert.Equal(t, models.SharedUserID, claims.Subject)
}

func TestAuthService_SetPasswordTooShort(t *testing.T) {
	svc := services.NewAuthService(testAuthConfig(), memory.NewStore())

	err := svc.SetPassword(context.Background(), "abc")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthService_EnsurePassword(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := services.NewAuthService(testAuthConfig(), store)

	require.NoError(t, svc.EnsurePassword(ctx, ""))
	_, err := store.GetPasswordHash(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, svc.EnsurePassword(ctx, "first-seed"))
	require.NoError(t, svc.EnsurePassword(ctx, "second-seed"))

	_, _, err = svc.Login(ctx, "first-seed")
	assert.NoError(t, err)
	_, _, err = svc.Login(ctx, "second-seed")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

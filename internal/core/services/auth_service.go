package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/SscSPs/camp_ledger_app/internal/utils"
)

// MinPasswordLength is the shortest shared password accepted by SetPassword.
const MinPasswordLength = 6

// authService implements AuthSvcFacade. The API has a single credential, so the token
// subject is always the shared user id.
type authService struct {
	BaseService
	userRepo  portsrepo.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiryDuration,
		jwtIssuer: cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	hash, err := s.userRepo.GetPasswordHash(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Login attempted before a password was configured")
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to read password hash")
		return "", time.Time{}, err
	}

	if !utils.CheckPasswordHash(password, hash) {
		s.GetLogger(ctx).Warn("Login failed: wrong password")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(models.SharedUserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	s.LogInfo(ctx, "Login succeeded")
	return token, expiresAt, nil
}

func (s *authService) SetPassword(ctx context.Context, password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, MinPasswordLength)
	}
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.SetPasswordHash(ctx, hash, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store password hash")
		return err
	}
	s.LogInfo(ctx, "Shared password updated")
	return nil
}

func (s *authService) EnsurePassword(ctx context.Context, seed string) error {
	_, err := s.userRepo.GetPasswordHash(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if seed == "" {
		s.GetLogger(ctx).Warn("No password stored and APP_PASSWORD is empty; logins will fail until set-password is run")
		return nil
	}
	return s.SetPassword(ctx, seed)
}

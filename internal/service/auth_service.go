package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ecofuture-uz/content-service/internal/auth"
	"github.com/ecofuture-uz/content-service/internal/config"
	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/repository"
)

// AuthService coordinates admin login and account management.
type AuthService struct {
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	bootstrap  config.AuthConfig
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, admins repository.AdminRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		admins:     admins,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		bootstrap:  cfg.Auth,
		logger:     logger,
	}
}

// Login authenticates an admin and returns a role-bearing token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	if !admin.Active {
		return nil, "", time.Time{}, errors.New("account inactive")
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, exp, nil
}

// Logout no-ops for the stateless JWT approach; the client discards its token.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(admin.PasswordHash, currentPassword); err != nil {
		return errors.New("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return s.admins.Update(ctx, admin)
}

// EnsureBootstrapAdmin creates the first admin account from env credentials
// when the admins table is empty. Without credentials configured the admin
// area stays unreachable until an account is provisioned by hand.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.bootstrap.BootstrapEmail == "" || s.bootstrap.BootstrapPassword == "" {
		s.logger.Warn("no admins exist and no bootstrap credentials configured")
		return nil
	}

	hash, err := auth.HashPassword(s.bootstrap.BootstrapPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.Admin{
		Name:         "Administrator",
		Email:        s.bootstrap.BootstrapEmail,
		PasswordHash: hash,
		Role:         domain.AdminRoleAdmin,
		Active:       true,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("bootstrap admin created", zap.String("email", admin.Email))
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

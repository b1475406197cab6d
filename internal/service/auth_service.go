package service

import (
	"context"
	"crypto/subtle"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-site/internal/auth"
	"github.com/spec-kit/portfolio-site/internal/config"
	"github.com/spec-kit/portfolio-site/internal/domain"
	apperrors "github.com/spec-kit/portfolio-site/pkg/util/errorutil"
)

// AuthService coordinates the admin login flow.
type AuthService struct {
	username     string
	passwordHash string
	tokenMgr     *auth.TokenManager
	logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AdminConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		logger:       logger,
	}
}

// Login checks the admin credentials and issues a bearer token.
func (s *AuthService) Login(_ context.Context, username, password string) (*domain.AdminPrincipal, string, time.Time, error) {
	if s.passwordHash == "" {
		return nil, "", time.Time{}, apperrors.NewServiceUnavailable("admin login is not configured", nil)
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := auth.ComparePassword(s.passwordHash, password)
	if !userOK || passErr != nil {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(s.username, domain.SubjectTypeAdmin)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return &domain.AdminPrincipal{Username: s.username}, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

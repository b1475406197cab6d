package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/portfolio-site/internal/config"
	"github.com/spec-kit/portfolio-site/internal/domain"
	apperrors "github.com/spec-kit/portfolio-site/pkg/util/errorutil"
)

func adminConfig(t *testing.T) config.AdminConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AdminConfig{
		Username:        "admin",
		PasswordHash:    string(hash),
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 5,
	}
}

func TestAdminLogin(t *testing.T) {
	svc := NewAuthService(adminConfig(t), nil)

	principal, token, exp, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.Username)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectTypeAdmin, claims.Subject)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(adminConfig(t), nil)

	_, _, _, err := svc.Login(context.Background(), "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	_, _, _, err = svc.Login(context.Background(), "root", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestAdminLoginUnconfigured(t *testing.T) {
	cfg := adminConfig(t)
	cfg.PasswordHash = ""
	svc := NewAuthService(cfg, nil)

	_, _, _, err := svc.Login(context.Background(), "admin", "s3cret")
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.StatusOf(err))
}

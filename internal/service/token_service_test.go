package service_test

import (
	"testing"
	"time"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/aditya/news-blog-platform/internal/service"
	"github.com/aditya/news-blog-platform/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)

	user := &domain.User{
		ID:       uuid.New(),
		Username: "tokenuser",
		Email:    "token@example.com",
		Role:     domain.RoleAdmin,
	}

	access, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)
	refresh, err := tokens.IssueRefreshToken(user)
	require.NoError(t, err)

	accessClaims, err := tokens.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Username, accessClaims.Username)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, user.Role, accessClaims.Role)

	refreshClaims, err := tokens.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
}

func TestTokenService_SecretsAreDistinct(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)

	user := &domain.User{ID: uuid.New(), Username: "crossuser", Email: "cross@example.com", Role: domain.RoleUser}

	access, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)
	refresh, err := tokens.IssueRefreshToken(user)
	require.NoError(t, err)

	// A token of one class must not verify as the other
	_, err = tokens.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	_, err = tokens.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_VerifyAccessToken(t *testing.T) {
	cfg := testutil.TestConfig()
	tokens := service.NewTokenService(cfg)

	user := &domain.User{ID: uuid.New(), Username: "verifyuser", Email: "verify@example.com", Role: domain.RoleUser}

	valid, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	expiredCfg := testutil.TestConfig()
	expiredCfg.AccessTokenTTL = -time.Minute
	expired, err := service.NewTokenService(expiredCfg).IssueAccessToken(user)
	require.NoError(t, err)

	otherCfg := testutil.TestConfig()
	otherCfg.AccessTokenSecret = "a-completely-different-secret"
	forged, err := service.NewTokenService(otherCfg).IssueAccessToken(user)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: valid},
		{name: "expired token", token: expired, wantErr: true},
		{name: "wrong secret", token: forged, wantErr: true},
		{name: "malformed token", token: "notavalidjwt", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.VerifyAccessToken(tt.token)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
		})
	}
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/roster-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret:          "test-secret-thats-at-least-32-characters-long",
		Issuer:               "roster-api",
		Audience:             "roster-clients",
		TokenLifetimeMinutes: 60,
	}
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig()
		cfg.TokenSecret = "too-short"
		_, err := NewTokenService(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)

		token, err := svc.IssueToken(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, apiTokenSubject, claims.Subject)
		assert.Equal(t, "roster-api", claims.Issuer)
		assert.NotEmpty(t, claims.ID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
	})

	t.Run("issued tokens carry distinct ids", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)

		first, err := svc.IssueToken(ctx)
		require.NoError(t, err)
		second, err := svc.IssueToken(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		firstClaims, err := svc.ValidateToken(ctx, first)
		require.NoError(t, err)
		secondClaims, err := svc.ValidateToken(ctx, second)
		require.NoError(t, err)
		assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)
		impl := svc.(*hmacTokenService)

		issuedAt := time.Now().Add(-2 * time.Hour)
		impl.timeFunc = func() time.Time { return issuedAt }
		token, err := svc.IssueToken(ctx)
		require.NoError(t, err)

		impl.timeFunc = time.Now
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)

		otherCfg := testAuthConfig()
		otherCfg.TokenSecret = "another-secret-thats-also-32-characters!"
		other, err := NewTokenService(otherCfg)
		require.NoError(t, err)

		token, err := other.IssueToken(ctx)
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token from a different issuer", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)

		otherCfg := testAuthConfig()
		otherCfg.Issuer = "someone-else"
		other, err := NewTokenService(otherCfg)
		require.NoError(t, err)

		token, err := other.IssueToken(ctx)
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministryshare/internal/shared/authorization"
)

func TestGenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 7)
	churchID := uint(42)

	pair, err := svc.Generate(7, authorization.RoleEditor, &churchID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(24*60*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, authorization.RoleEditor, claims.Role)
	require.NotNil(t, claims.ChurchID)
	assert.Equal(t, uint(42), *claims.ChurchID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestGenerateAdminWithoutChurch(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 7)

	pair, err := svc.Generate(1, authorization.RoleAdmin, nil)
	require.NoError(t, err)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Nil(t, claims.ChurchID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 7)
	other := NewJWTService("different-secret", 1, 7)

	pair, err := svc.Generate(7, authorization.RoleEditor, nil)
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 7)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestRefreshRotatesPair(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 7)
	churchID := uint(3)

	pair, err := svc.Generate(9, authorization.RoleEditor, &churchID)
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.Verify(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	require.NotNil(t, claims.ChurchID)
	assert.Equal(t, uint(3), *claims.ChurchID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 7)

	pair, err := svc.Generate(9, authorization.RoleEditor, nil)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestShouldRefresh(t *testing.T) {
	// Access tokens live one day; a fresh token is not within the one-hour
	// refresh threshold.
	svc := NewJWTService("test-secret", 1, 7)

	pair, err := svc.Generate(9, authorization.RoleEditor, nil)
	require.NoError(t, err)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.False(t, svc.ShouldRefresh(claims))
	assert.False(t, svc.ShouldRefresh(nil))
}

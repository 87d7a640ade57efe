package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

func newTestJWTService() Service {
	return NewJWTService("test-secret-key", "15m", "168h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "budi@example.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	email, _ := token.Get("email")
	assert.Equal(t, "budi@example.com", email)
	role, _ := token.Get("role")
	assert.Equal(t, "admin", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestRefreshToken_RevokedRejected(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(tokenString)

	assert.True(t, svc.IsTokenRevoked(tokenString))
	_, err = svc.ValidateRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestSSEToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	tokenString, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSSEToken_RejectedAsRefresh(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestAccessToken_RejectedAsSSE(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "budi@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_WrongKeyRejected(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()
	other := NewJWTService("different-secret", "15m", "168h")

	tokenString, _, err := other.GenerateSSEToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_GarbageRejected(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()

	_, err := svc.ValidateSSEToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()
	svc := newTestJWTService()
	expiresAt := time.Now().Add(time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)
}

func TestGenerateAccessToken_BadExpirationConfig(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret-key", "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("user-1", "budi@example.com", user.RoleEmployee)
	assert.Error(t, err)
}

package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrOAuthStateMismatch   = errors.New("oauth state mismatch")
	ErrOAuthEmailUnverified = errors.New("oauth email not verified")
)

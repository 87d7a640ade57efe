package auth

import (
	"context"

	"github.com/leavetrack/leave-backend-go/internal/pkg/oauth"
)

// AuthService implements the identity contract: sign-up and sign-in
// producing a session, plus token refresh and revocation.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (SessionResponse, error)
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	LoginWithGoogle(ctx context.Context, info oauth.GoogleInformation) (SessionResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

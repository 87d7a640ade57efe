package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/leavetrack/leave-backend-go/internal/domain/auth"
	"github.com/leavetrack/leave-backend-go/internal/domain/user"
	"github.com/leavetrack/leave-backend-go/internal/pkg/database"
	"github.com/leavetrack/leave-backend-go/internal/pkg/jwt"
	"github.com/leavetrack/leave-backend-go/internal/pkg/oauth"
	"github.com/leavetrack/leave-backend-go/internal/repository/postgresql"
)

const providerGoogle = "google"

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.RefreshTokenRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.SessionResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.SessionResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		Name:         req.Name,
		Department:   req.Department,
		Position:     req.Position,
		Role:         role,
	})
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.issueSession(ctx, created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.SessionResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueSession(ctx, userData)
}

// LoginWithGoogle implements auth.AuthService. First-time Google sign-ins
// create a profile seeded from the Google account.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, info oauth.GoogleInformation) (auth.SessionResponse, error) {
	if !info.VerifiedEmail {
		return auth.SessionResponse{}, auth.ErrOAuthEmailUnverified
	}

	userData, err := a.UserRepository.GetByOAuth(ctx, providerGoogle, info.GoogleID)
	if err == nil {
		return a.issueSession(ctx, userData)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.SessionResponse{}, fmt.Errorf("failed to get user by oauth id: %w", err)
	}

	provider := providerGoogle
	providerID := info.GoogleID
	newUser := user.User{
		Email:           info.Email,
		Name:            info.Name,
		Role:            user.RoleEmployee,
		OAuthProvider:   &provider,
		OAuthProviderID: &providerID,
	}
	if info.Picture != "" {
		picture := info.Picture
		newUser.AvatarURL = &picture
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create oauth user: %w", err)
	}

	return a.issueSession(ctx, created)
}

// issueSession generates the token pair and records the refresh token inside
// a transaction, so a failed write leaves no half-issued session behind.
func (a *AuthServiceImpl) issueSession(ctx context.Context, userData user.User) (auth.SessionResponse, error) {
	var tokens auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		var err error
		tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.RefreshTokenRepository.Store(txCtx, userData.ID, tokens.RefreshToken, tokens.RefreshTokenExpiresIn); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		Tokens: tokens,
		User:   user.ToResponse(userData),
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	userID, err := a.Service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.RefreshTokenRepository.IsRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  expiresAt,
		RefreshToken:          req.RefreshToken,
		RefreshTokenExpiresIn: 0,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	a.Service.RevokeToken(refreshToken)

	if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leavetrack/leave-backend-go/internal/pkg/database"
)

// RefreshTokenRepository persists issued refresh tokens so revocation
// survives restarts.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt int64) error
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, userID, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
	`
	_, err := q.Exec(ctx, query, uuid.New().String(), userID, token, time.Unix(expiresAt, 0), time.Now())
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked = true WHERE token = $1`
	if _, err := q.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// A token we never issued is treated as revoked.
	query := `SELECT COALESCE((SELECT revoked FROM refresh_tokens WHERE token = $1), true)`
	var revoked bool
	if err := q.QueryRow(ctx, query, token).Scan(&revoked); err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return revoked, nil
}

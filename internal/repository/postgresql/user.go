package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leavetrack/leave-backend-go/internal/domain/user"
	"github.com/leavetrack/leave-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	id, email, password_hash, name, department, position, role, avatar_url,
	oauth_provider, oauth_provider_id, created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Department,
		&u.Position,
		&u.Role,
		&u.AvatarURL,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now()

	query := `
		INSERT INTO users (
			id, email, password_hash, name, department, position, role,
			avatar_url, oauth_provider, oauth_provider_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Department,
		u.Position,
		string(u.Role),
		u.AvatarURL,
		u.OAuthProvider,
		u.OAuthProviderID,
		now,
		now,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(q.QueryRow(ctx, query, id))
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.getOne(q.QueryRow(ctx, query, email))
}

func (r *userRepositoryImpl) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE oauth_provider = $1 AND oauth_provider_id = $2`
	return r.getOne(q.QueryRow(ctx, query, provider, providerID))
}

func (r *userRepositoryImpl) getOne(row pgx.Row) (user.User, error) {
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return r.listWhere(ctx, "", nil)
}

func (r *userRepositoryImpl) ListAdmins(ctx context.Context) ([]user.User, error) {
	return r.listWhere(ctx, "WHERE role = $1", []interface{}{string(user.RoleAdmin)})
}

func (r *userRepositoryImpl) listWhere(ctx context.Context, where string, args []interface{}) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ` + where + ` ORDER BY name ASC`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, upd user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name = COALESCE($2, name),
			department = COALESCE($3, department),
			position = COALESCE($4, position),
			avatar_url = COALESCE($5, avatar_url),
			updated_at = $6
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, upd.ID, upd.Name, upd.Department, upd.Position, upd.AvatarURL, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

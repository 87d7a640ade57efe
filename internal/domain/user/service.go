package user

import "context"

// UserService covers profile reads and updates
type UserService interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
}

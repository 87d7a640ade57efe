package user

import (
	"context"
	"fmt"

	"github.com/leavetrack/leave-backend-go/internal/domain/user"
)

type Service struct {
	users user.UserRepository
}

func NewUserService(users user.UserRepository) *Service {
	return &Service{users: users}
}

// GetProfile implements user.UserService.
func (s *Service) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *Service) UpdateProfile(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.users.Update(ctx, req); err != nil {
		return user.UserResponse{}, fmt.Errorf("update user: %w", err)
	}

	u, err := s.users.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *Service) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

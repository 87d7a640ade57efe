package user

import (
	"time"

	"github.com/leavetrack/leave-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

// UpdateUserRequest carries a partial profile update; nil fields are left untouched.
type UpdateUserRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	AvatarURL  *string `json:"avatar_url"`
}

func (r UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "must not be empty"})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

// UserResponse represents a user profile in API responses
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Role       Role      `json:"role"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts a User entity to its API shape
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Department: u.Department,
		Position:   u.Position,
		Role:       u.Role,
		AvatarURL:  u.AvatarURL,
		CreatedAt:  u.CreatedAt,
	}
}

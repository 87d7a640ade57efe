package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleAdmin    Role = "admin"    // Can approve leave and export reports
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleEmployee || r == RoleAdmin
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Name            string
	Department      string
	Position        string
	Role            Role
	AvatarURL       *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user can approve requests and access reporting
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access, manages employees and users
	RoleUser  Role = "user"  // Read-only access to employees and reports
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return Role(s) == RoleAdmin || Role(s) == RoleUser
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package auth

import (
	"github.com/gpe-labs/payroll-backend-go/internal/domain/user"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, numbers, dots, underscores, or hyphens",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}

	if r.Role != "" && !user.ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or user",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DefaultedRole returns the requested role, defaulting to user.
func (r *RegisterRequest) DefaultedRole() user.Role {
	if r.Role == "" {
		return user.RoleUser
	}
	return user.Role(r.Role)
}

type TokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresIn int64     `json:"access_token_expires_in"`
	Role                 user.Role `json:"role"`
}

type RegisterResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

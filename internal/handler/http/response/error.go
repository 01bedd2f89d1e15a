package response

import (
	"errors"
	"net/http"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/auth"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/user"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSalaryEmployeeNotFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrInvalidPayType):
		BadRequest(w, err.Error(), nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

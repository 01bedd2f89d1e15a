package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already exists")
	ErrInvalidRole            = errors.New("role must be admin or user")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeleteSelf       = errors.New("cannot delete your own user account")
)

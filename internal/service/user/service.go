package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetAll implements user.UserService.
func (s *UserServiceImpl) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.ToResponse(found), nil
}

// Update implements user.UserService. Only supplied fields change; a
// new username must stay unique and a new password is re-hashed.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if req.Username != nil && *req.Username != existing.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, *req.Username)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUsernameExists
		}
		existing.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.userRepo.Update(ctx, existing)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return deleted, nil
}

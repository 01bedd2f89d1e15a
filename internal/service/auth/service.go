package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/auth"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/user"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/database"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/gpe-labs/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:       db,
		userRepo: userRepo,
		Service:  jwtService,
	}
}

// inTx runs fn inside a database transaction, exposing it to the
// repositories through the context. Without a pool, fn runs directly.
func (a *AuthServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService. A failed login never touches
// last_login_at.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.Role = userData.Role

	if err := a.userRepo.UpdateLastLogin(ctx, userData.ID, time.Now()); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to update last login: %w", err)
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService. The uniqueness check and the
// insert share one transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = a.inTx(ctx, func(txCtx context.Context) error {
		exists, err := a.userRepo.ExistsByUsername(txCtx, req.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return user.ErrUsernameExists
		}

		newUser := user.User{
			ID:           uuid.NewString(),
			Username:     req.Username,
			PasswordHash: hashedPassword,
			Role:         req.DefaultedRole(),
			IsActive:     true,
		}
		created, err = a.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{
		ID:       created.ID,
		Username: created.Username,
		Role:     created.Role,
	}, nil
}

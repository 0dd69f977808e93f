package user

import (
	"context"

	"foodee-backend/internal/shared"
)

type Service interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	// Profile
	GetProfile(ctx context.Context, p shared.Principal) (*UserDTO, error)
	UpdateProfile(ctx context.Context, p shared.Principal, req UpdateProfileRequest) (*UserDTO, error)

	// Admin
	ListUsers(ctx context.Context, p shared.Principal) ([]UserDTO, error)
	GetUserByUsername(ctx context.Context, p shared.Principal, username string) (*UserDTO, error)
	CreateUser(ctx context.Context, p shared.Principal, req AdminUserRequest) (*UserDTO, error)
	UpdateUser(ctx context.Context, p shared.Principal, username string, req AdminUserRequest) (*UserDTO, error)
	DeleteUser(ctx context.Context, p shared.Principal, username string) error

	// Worker
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodee-backend/internal/domains/user"
	"foodee-backend/internal/infrastructure/email"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/database"
	"foodee-backend/pkg/logger"
)

// TokenIssuer - phần của jwt.Manager mà service cần
type TokenIssuer interface {
	GenerateToken(userID int64, username string, roles []string) (string, time.Time, error)
}

type userService struct {
	repo        user.Repository
	tokenRepo   user.ResetTokenRepository
	txManager   database.TxManager
	tokens      TokenIssuer
	mailer      email.EmailService
	frontendURL string
	bcryptCost  int
	now         func() time.Time
}

type Option func(*userService)

// WithBcryptCost dùng trong test để hash nhanh
func WithBcryptCost(cost int) Option {
	return func(s *userService) { s.bcryptCost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(s *userService) { s.now = now }
}

func NewUserService(
	repo user.Repository,
	tokenRepo user.ResetTokenRepository,
	txManager database.TxManager,
	tokens TokenIssuer,
	mailer email.EmailService,
	frontendURL string,
	opts ...Option,
) user.Service {
	s := &userService{
		repo:        repo,
		tokenRepo:   tokenRepo,
		txManager:   txManager,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: frontendURL,
		bcryptCost:  bcrypt.DefaultCost,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Enabled:      true,
		Roles:        []string{shared.RoleUser},
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, u)
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
	})

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.Enabled {
		return nil, user.ErrUserDisabled
	}

	token, expiresAt, err := s.tokens.GenerateToken(u.ID, u.Username, u.Roles)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      u.ToDTO(),
	}, nil
}

// ForgotPassword không báo lỗi khi email không tồn tại
func (s *userService) ForgotPassword(ctx context.Context, req user.ForgotPasswordRequest) error {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			logger.Debug("Forgot password for unknown email", map[string]interface{}{"email": req.Email})
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	token := &user.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: s.now().Add(user.ResetTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}

	data := email.ResetPasswordData{
		Email:     u.Email,
		FullName:  u.FullName,
		ResetURL:  s.frontendURL + "/reset-password?token=" + url.QueryEscape(token.Token),
		ExpiresIn: "30 phút",
	}
	if err := s.mailer.SendResetPasswordEmail(ctx, data); err != nil {
		return shared.Internal("USR500", "Không thể gửi email đặt lại mật khẩu", err)
	}

	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return err
	}

	hash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		token, err := s.tokenRepo.FindByToken(ctx, req.Token)
		if err != nil {
			return err
		}
		if !token.IsUsable(s.now()) {
			return user.ErrInvalidResetToken
		}

		if err := s.repo.UpdatePassword(ctx, token.UserID, hash); err != nil {
			return err
		}
		return s.tokenRepo.MarkUsed(ctx, token.Token)
	})
}

// ========================================
// PROFILE
// ========================================

func (s *userService) GetProfile(ctx context.Context, p shared.Principal) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

// UpdateProfile chỉ sửa thông tin cơ bản, không đụng tới roles / enabled
func (s *userService) UpdateProfile(ctx context.Context, p shared.Principal, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}
	if req.Username != p.Username {
		return nil, user.ErrProfileMismatch
	}

	var updated *user.User
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.repo.FindByID(ctx, p.UserID)
		if err != nil {
			return err
		}

		if err := s.ensureEmailAvailable(ctx, u, req.Email); err != nil {
			return err
		}

		u.Email = req.Email
		u.FullName = req.FullName
		u.Address = req.Address
		u.PhoneNumber = req.PhoneNumber

		if err := s.repo.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

// ========================================
// ADMIN
// ========================================

// ListUsers trả về user thường, bỏ qua tài khoản admin
func (s *userService) ListUsers(ctx context.Context, p shared.Principal) ([]user.UserDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		if users[i].IsAdmin() {
			continue
		}
		dtos = append(dtos, users[i].ToDTO())
	}
	return dtos, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, p shared.Principal, username string) (*user.UserDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) CreateUser(ctx context.Context, p shared.Principal, req user.AdminUserRequest) (*user.UserDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate(true)); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Enabled:      req.Enabled == nil || *req.Enabled,
		Roles:        req.Roles,
	}
	if len(u.Roles) == 0 {
		u.Roles = []string{shared.RoleUser}
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, u)
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) UpdateUser(ctx context.Context, p shared.Principal, username string, req user.AdminUserRequest) (*user.UserDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := shared.ValidationFailed(req.Validate(false)); err != nil {
		return nil, err
	}

	var hash string
	if req.Password != "" {
		h, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	var updated *user.User
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.repo.FindByUsername(ctx, username)
		if err != nil {
			return err
		}

		if req.Email != "" {
			if err := s.ensureEmailAvailable(ctx, u, req.Email); err != nil {
				return err
			}
			u.Email = req.Email
		}
		if req.FullName != "" {
			u.FullName = req.FullName
		}
		if req.Address != "" {
			u.Address = req.Address
		}
		if req.PhoneNumber != "" {
			u.PhoneNumber = req.PhoneNumber
		}
		if req.Enabled != nil {
			u.Enabled = *req.Enabled
		}

		if err := s.repo.Update(ctx, u); err != nil {
			return err
		}

		if hash != "" {
			if err := s.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
				return err
			}
		}

		if req.Roles != nil {
			if err := s.repo.SetRoles(ctx, u.ID, req.Roles); err != nil {
				return err
			}
			u.Roles = req.Roles
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *userService) DeleteUser(ctx context.Context, p shared.Principal, username string) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.repo.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, u.ID); err != nil {
			if database.IsForeignKeyViolation(err) {
				return user.ErrUserInUse.Wrap(err)
			}
			return err
		}
		return nil
	})
}

// CleanupExpiredTokens được worker gọi theo lịch
func (s *userService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokenRepo.DeleteExpired(ctx, s.now())
}

// ========================================
// HELPERS
// ========================================

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) ensureUnique(ctx context.Context, username, emailAddr string) error {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return user.ErrUsernameExists
	}

	exists, err = s.repo.ExistsByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (s *userService) ensureEmailAvailable(ctx context.Context, u *user.User, newEmail string) error {
	if newEmail == u.Email {
		return nil
	}
	exists, err := s.repo.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByLogin tìm theo username hoặc email
	FindByLogin(ctx context.Context, login string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	// SetRoles thay toàn bộ role của user
	SetRoles(ctx context.Context, userID int64, roles []string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ResetTokenRepository interface {
	Create(ctx context.Context, t *PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*PasswordResetToken, error)
	MarkUsed(ctx context.Context, token string) error
	// DeleteExpired xóa token hết hạn trước cutoff hoặc đã dùng
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

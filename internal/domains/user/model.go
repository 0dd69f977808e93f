package user

import (
	"time"

	"foodee-backend/internal/shared"
)

// User ánh xạ bảng users, roles lấy từ user_roles
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Address      string
	PhoneNumber  string
	Enabled      bool
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(shared.RoleAdmin)
}

func (u *User) ToDTO() UserDTO {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Enabled:     u.Enabled,
		Roles:       roles,
	}
}

// ResetTokenTTL - thời hạn link đặt lại mật khẩu
const ResetTokenTTL = 30 * time.Minute

type PasswordResetToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsUsable: chưa dùng và chưa hết hạn tại thời điểm now
func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// IsValidRole chỉ chấp nhận ROLE_USER / ROLE_ADMIN
func IsValidRole(role string) bool {
	return role == shared.RoleUser || role == shared.RoleAdmin
}

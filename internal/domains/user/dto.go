package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullname"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("Tên đăng nhập không được để trống"),
			validation.RuneLength(3, 50).Error("Tên đăng nhập phải từ 3 đến 50 ký tự"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email không được để trống"),
			is.EmailFormat.Error("Email không hợp lệ"),
			validation.Length(0, 100),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Mật khẩu không được để trống"),
			validation.RuneLength(6, 100).Error("Mật khẩu phải có ít nhất 6 ký tự"),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("Họ tên không được để trống"),
			validation.RuneLength(0, 100),
		),
		validation.Field(&r.Address, validation.RuneLength(0, 255)),
		validation.Field(&r.PhoneNumber, validation.RuneLength(0, 20)),
	)
}

// LoginRequest - Username chấp nhận cả email
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("Tên đăng nhập không được để trống")),
		validation.Field(&r.Password, validation.Required.Error("Mật khẩu không được để trống")),
	)
}

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email không được để trống"),
			is.EmailFormat.Error("Email không hợp lệ"),
		),
	)
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required.Error("Thiếu token hoặc mật khẩu mới")),
		validation.Field(&r.NewPassword,
			validation.Required.Error("Thiếu token hoặc mật khẩu mới"),
			validation.RuneLength(6, 100).Error("Mật khẩu phải có ít nhất 6 ký tự"),
		),
	)
}

// ========================================
// PROFILE DTOs
// ========================================

type UserDTO struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullname"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phoneNumber"`
	Enabled     bool     `json:"enabled"`
	Roles       []string `json:"roles"`
}

// UpdateProfileRequest - user tự sửa thông tin cơ bản
// Username phải trùng với user đang đăng nhập
type UpdateProfileRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullname"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("Tên đăng nhập không được để trống")),
		validation.Field(&r.Email,
			validation.Required.Error("Email không được để trống"),
			is.EmailFormat.Error("Email không hợp lệ"),
		),
		validation.Field(&r.FullName, validation.RuneLength(0, 100)),
		validation.Field(&r.Address, validation.RuneLength(0, 255)),
		validation.Field(&r.PhoneNumber, validation.RuneLength(0, 20)),
	)
}

// ========================================
// ADMIN DTOs
// ========================================

// AdminUserRequest dùng cho tạo mới và cập nhật user
// Password rỗng khi update = giữ nguyên; Enabled nil = giữ nguyên
type AdminUserRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FullName    string   `json:"fullname"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phoneNumber"`
	Enabled     *bool    `json:"enabled"`
	Roles       []string `json:"roles"`
}

func (r AdminUserRequest) Validate(creating bool) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(creating, validation.Required.Error("Tên đăng nhập không được để trống")),
			validation.RuneLength(3, 50).Error("Tên đăng nhập phải từ 3 đến 50 ký tự"),
		),
		validation.Field(&r.Email,
			validation.When(creating, validation.Required.Error("Email không được để trống")),
			is.EmailFormat.Error("Email không hợp lệ"),
		),
		validation.Field(&r.Password,
			validation.When(creating, validation.Required.Error("Mật khẩu không được để trống")),
			validation.RuneLength(6, 100).Error("Mật khẩu phải có ít nhất 6 ký tự"),
		),
		validation.Field(&r.Roles, validation.Each(validation.By(func(v interface{}) error {
			if !IsValidRole(v.(string)) {
				return ErrInvalidRole
			}
			return nil
		}))),
	)
}

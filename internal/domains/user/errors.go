package user

import "foodee-backend/internal/shared"

var (
	ErrUserNotFound       = shared.NotFound("USR001", "Không tìm thấy người dùng")
	ErrUsernameExists     = shared.Conflict("USR002", "Tên đăng nhập đã tồn tại")
	ErrEmailExists        = shared.Conflict("USR003", "Email đã được sử dụng")
	ErrInvalidCredentials = shared.Unauthorized("USR004", "Thông tin đăng nhập không hợp lệ")
	ErrUserDisabled       = shared.Forbidden("USR005", "Tài khoản đã bị vô hiệu hóa")
	ErrInvalidResetToken  = shared.Validation("USR006", "Token không hợp lệ hoặc đã hết hạn")
	ErrInvalidRole        = shared.Validation("USR007", "Vai trò không hợp lệ")
	ErrProfileMismatch    = shared.Forbidden("USR008", "Không thể cập nhật hồ sơ của người dùng khác")
)

var ErrUserInUse = shared.Conflict("USR009", "Không thể xóa người dùng đã có đơn hàng hoặc đặt bàn")

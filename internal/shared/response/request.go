package response

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/shared"
)

var (
	ErrInvalidBody = shared.Validation("REQ001", "Dữ liệu yêu cầu không hợp lệ")
	ErrInvalidID   = shared.Validation("REQ002", "ID không hợp lệ")
	ErrInvalidNum  = shared.Validation("REQ003", "Tham số phải là số")
)

// BindJSON ghi 400 và trả về false nếu body không parse được
func BindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		HandleError(c, ErrInvalidBody.Wrap(err))
		return false
	}
	return true
}

// ParamID đọc path param kiểu int64 dương
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		HandleError(c, ErrInvalidID)
		return 0, false
	}
	return id, true
}

// QueryInt64 đọc query param bắt buộc kiểu số
func QueryInt64(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		HandleError(c, ErrInvalidNum.WithMessage("Tham số "+name+" phải là số"))
		return 0, false
	}
	return v, true
}

// QueryIntDefault đọc query param tùy chọn, sai định dạng thì dùng def
func QueryIntDefault(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

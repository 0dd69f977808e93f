package model

import "foodee-backend/internal/shared"

var (
	ErrProductNotFound      = shared.NotFound("CAT001", "Sản phẩm không tồn tại")
	ErrProductNameExists    = shared.Conflict("CAT002", "Sản phẩm với tên này đã tồn tại")
	ErrProductTypeNotFound  = shared.NotFound("CAT003", "Loại sản phẩm không tồn tại")
	ErrProductTypeExists    = shared.Conflict("CAT004", "Loại sản phẩm với tên này đã tồn tại")
	ErrProductTypeInUse     = shared.Conflict("CAT005", "Không thể xóa loại sản phẩm đang có sản phẩm")
	ErrCategoryNotFound     = shared.NotFound("CAT006", "Danh mục không tồn tại")
	ErrCategoryExists       = shared.Conflict("CAT007", "Danh mục với tên này đã tồn tại")
	ErrCategoryInUse        = shared.Conflict("CAT008", "Không thể xóa danh mục đang có sản phẩm")
	ErrEmptySearchName      = shared.Validation("CAT009", "Tên sản phẩm không được để trống")
	ErrInvalidImage         = shared.Validation("CAT010", "Ảnh không hợp lệ (chỉ chấp nhận JPEG/PNG, tối đa 5MB)")
	ErrImageStorageDisabled = shared.Internal("CAT011", "Chưa cấu hình lưu trữ ảnh", nil)
)

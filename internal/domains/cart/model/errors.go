package model

import "foodee-backend/internal/shared"

var (
	ErrInvalidQuantity     = shared.Validation("CRT001", "Số lượng phải lớn hơn 0")
	ErrNegativeQuantity    = shared.Validation("CRT002", "Số lượng không được âm")
	ErrProductNotAvailable = shared.Validation("CRT003", "Sản phẩm không khả dụng")
	ErrItemNotInCart       = shared.NotFound("CRT004", "Sản phẩm không có trong giỏ hàng")
	ErrCartNotFound        = shared.NotFound("CRT005", "Giỏ hàng không tồn tại")
)

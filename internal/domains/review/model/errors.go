package model

import "foodee-backend/internal/shared"

var (
	ErrOrderNotFound     = shared.NotFound("REV001", "Không tìm thấy đơn hàng")
	ErrProductNotFound   = shared.NotFound("REV002", "Không tìm thấy sản phẩm")
	ErrNotOrderOwner     = shared.Forbidden("REV003", "Không có quyền đánh giá đơn này")
	ErrOrderNotDelivered = shared.Validation("REV004", "Chỉ được đánh giá khi đơn đã giao")
	ErrProductNotInOrder = shared.Validation("REV005", "Sản phẩm không thuộc đơn hàng này")
	ErrAlreadyReviewed   = shared.Conflict("REV006", "Bạn đã đánh giá món này rồi")
)

package model

import "foodee-backend/internal/shared"

var (
	ErrOrderNotFound        = shared.NotFound("ORD001", "Đơn hàng không tồn tại")
	ErrCartEmpty            = shared.Validation("ORD002", "Giỏ hàng trống")
	ErrInvalidPaymentMethod = shared.Validation("ORD003", "Hình thức thanh toán không hợp lệ")
	ErrInvalidQuantity      = shared.Validation("ORD004", "Số lượng sản phẩm phải lớn hơn 0")
	ErrProductNotOrderable  = shared.Validation("ORD005", "Sản phẩm không khả dụng để đặt hàng")
	ErrInvalidOrderStatus   = shared.Validation("ORD006", "Trạng thái đơn hàng không hợp lệ")
	ErrInvalidPaymentStatus = shared.Validation("ORD007", "Trạng thái thanh toán không hợp lệ")
	ErrCannotRequestCancel  = shared.Validation("ORD008", "Chỉ có thể hủy đơn hàng ở trạng thái Chờ xác nhận hoặc Đã xác nhận")
	ErrNotCancelRequested   = shared.Validation("ORD009", "Đơn hàng không ở trạng thái yêu cầu hủy")
	ErrCannotDelete         = shared.Validation("ORD010", "Chỉ có thể xóa đơn hàng ở trạng thái Đã hủy")
	ErrDeliveryDateRequired = shared.Validation("ORD011", "Thời gian giao hàng không được để trống")
	ErrDeliveryDateInPast   = shared.Validation("ORD012", "Thời gian giao hàng không được là thời điểm trong quá khứ")
	ErrNotOrderOwner        = shared.Forbidden("ORD013", "Bạn không có quyền hủy đơn hàng này")
	ErrOrderAccessDenied    = shared.Forbidden("ORD014", "Bạn không có quyền truy cập đơn hàng này")
	ErrInvalidDeliveryDate  = shared.Validation("ORD015", "Thời gian giao hàng không đúng định dạng")
)

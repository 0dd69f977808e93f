package booking

import "foodee-backend/internal/shared"

var (
	ErrBookingNotFound     = shared.NotFound("BKG001", "Đơn đặt bàn không tồn tại")
	ErrViewForbidden       = shared.Forbidden("BKG002", "Bạn không có quyền xem chi tiết đơn đặt bàn này")
	ErrCancelForbidden     = shared.Forbidden("BKG003", "Bạn không có quyền hủy đơn đặt bàn này")
	ErrCannotRequestCancel = shared.Validation("BKG004", "Chỉ có thể hủy đơn đặt bàn ở trạng thái chờ xác nhận")
	ErrNotCancelRequested  = shared.Validation("BKG005", "Đơn đặt bàn không ở trạng thái yêu cầu hủy")
	ErrBookingDateInPast   = shared.Validation("BKG006", "Ngày đặt bàn phải là ngày hiện tại hoặc trong tương lai")
	ErrInvalidBookingDate  = shared.Validation("BKG007", "Ngày đặt bàn không đúng định dạng yyyy-MM-dd")
	ErrInvalidBookingTime  = shared.Validation("BKG008", "Giờ đặt bàn không đúng định dạng HH:mm")
)

package booking

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\s\-']+$`)
	phonePattern = regexp.MustCompile(`^(\+84|0)[0-9]{9,12}$`)
)

type CreateBookingRequest struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	BookingDate     string `json:"bookingDate"` // yyyy-MM-dd
	BookingTime     string `json:"bookingTime"` // HH:mm
	NumberOfGuests  int    `json:"numberOfGuests"`
	Area            string `json:"area"`
	SpecialRequests string `json:"specialRequests"`
}

func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("Tên đầy đủ không được để trống"),
			validation.RuneLength(2, 100).Error("Tên đầy đủ phải từ 2 đến 100 ký tự"),
			validation.Match(namePattern).Error("Tên đầy đủ chỉ được chứa chữ cái, khoảng trắng, dấu gạch ngang hoặc dấu nháy đơn"),
		),
		validation.Field(&r.PhoneNumber,
			validation.Required.Error("Số điện thoại không được để trống"),
			validation.Match(phonePattern).Error("Số điện thoại không hợp lệ"),
		),
		validation.Field(&r.BookingDate, validation.Required.Error("Ngày đặt bàn không được để trống")),
		validation.Field(&r.BookingTime, validation.Required.Error("Giờ đặt bàn không được để trống")),
		validation.Field(&r.NumberOfGuests,
			validation.Required.Error("Số lượng khách phải là số dương"),
			validation.Min(1).Error("Số lượng khách phải là số dương"),
			validation.Max(100).Error("Số lượng khách tối đa là 100"),
		),
		validation.Field(&r.Area,
			validation.Required.Error("Khu vực không được để trống"),
			validation.RuneLength(0, 50).Error("Khu vực không được vượt quá 50 ký tự"),
		),
		validation.Field(&r.SpecialRequests,
			validation.RuneLength(0, 500).Error("Yêu cầu đặc biệt không được vượt quá 500 ký tự"),
		),
	)
}

type BookingDTO struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	PhoneNumber     string    `json:"phoneNumber"`
	BookingDate     string    `json:"bookingDate"`
	BookingTime     string    `json:"bookingTime"`
	NumberOfGuests  int       `json:"numberOfGuests"`
	Area            string    `json:"area"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
	Username        string    `json:"username"`
}

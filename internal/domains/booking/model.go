package booking

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending         Status = "PENDING"
	StatusConfirmed       Status = "CONFIRMED"
	StatusCancelled       Status = "CANCELLED"
	StatusCancelRequested Status = "CANCEL_REQUESTED"
)

// Booking - đặt bàn; BookingDate chỉ có phần ngày, BookingTime dạng HH:MM
type Booking struct {
	ID              int64
	UserID          int64
	Username        string
	FullName        string
	PhoneNumber     string
	BookingDate     time.Time
	BookingTime     string
	NumberOfGuests  int
	Area            string
	SpecialRequests string
	Status          Status
	CreatedAt       time.Time
}

func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// RequestCancel: khách chỉ hủy được khi còn chờ xác nhận
func (b *Booking) RequestCancel() error {
	if b.Status != StatusPending {
		return ErrCannotRequestCancel
	}
	b.Status = StatusCancelRequested
	return nil
}

func (b *Booking) ApproveCancel() error {
	if b.Status != StatusCancelRequested {
		return ErrNotCancelRequested
	}
	b.Status = StatusCancelled
	return nil
}

func (b *Booking) RejectCancel() error {
	if b.Status != StatusCancelRequested {
		return ErrNotCancelRequested
	}
	b.Status = StatusConfirmed
	return nil
}

func (b *Booking) ToDTO() BookingDTO {
	return BookingDTO{
		ID:              b.ID,
		FullName:        b.FullName,
		PhoneNumber:     b.PhoneNumber,
		BookingDate:     b.BookingDate.Format(DateLayout),
		BookingTime:     b.BookingTime,
		NumberOfGuests:  b.NumberOfGuests,
		Area:            b.Area,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		Status:          string(b.Status),
		Username:        b.Username,
	}
}

func ToDTOs(bookings []Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].ToDTO())
	}
	return out
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate đọc yyyy-MM-dd theo múi giờ loc
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, ErrInvalidBookingDate
	}
	return d, nil
}

// NormalizeTime chấp nhận HH:MM hoặc HH:MM:SS, trả về HH:MM
func NormalizeTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", ErrInvalidBookingTime
}

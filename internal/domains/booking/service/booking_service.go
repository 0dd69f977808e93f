package service

import (
	"context"
	"strings"
	"time"

	"foodee-backend/internal/domains/booking"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/database"
	"foodee-backend/pkg/logger"
)

type bookingService struct {
	repo      booking.Repository
	txManager database.TxManager
	loc       *time.Location
	now       func() time.Time
}

type Option func(*bookingService)

func WithClock(now func() time.Time) Option {
	return func(s *bookingService) { s.now = now }
}

// NewBookingService - loc quyết định "hôm nay" khi kiểm tra ngày đặt bàn
func NewBookingService(repo booking.Repository, txManager database.TxManager, loc *time.Location, opts ...Option) booking.Service {
	if loc == nil {
		loc = time.Local
	}
	s := &bookingService{
		repo:      repo,
		txManager: txManager,
		loc:       loc,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ========================================
// USER
// ========================================

func (s *bookingService) CreateBooking(ctx context.Context, p shared.Principal, req booking.CreateBookingRequest) (*booking.BookingDTO, error) {
	if err := shared.ValidationFailed(req.Validate()); err != nil {
		return nil, err
	}

	date, err := booking.ParseDate(req.BookingDate, s.loc)
	if err != nil {
		return nil, err
	}
	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	if date.Before(today) {
		return nil, booking.ErrBookingDateInPast
	}
	bookingTime, err := booking.NormalizeTime(req.BookingTime)
	if err != nil {
		return nil, err
	}

	b := &booking.Booking{
		UserID:          p.UserID,
		Username:        p.Username,
		FullName:        strings.TrimSpace(req.FullName),
		PhoneNumber:     req.PhoneNumber,
		BookingDate:     date,
		BookingTime:     bookingTime,
		NumberOfGuests:  req.NumberOfGuests,
		Area:            strings.TrimSpace(req.Area),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		Status:          booking.StatusPending,
		CreatedAt:       s.now(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Booking created", map[string]interface{}{
		"booking_id": b.ID,
		"user_id":    p.UserID,
		"date":       req.BookingDate,
		"time":       bookingTime,
		"guests":     b.NumberOfGuests,
	})
	return toDTO(b), nil
}

func (s *bookingService) GetHistory(ctx context.Context, p shared.Principal) ([]booking.BookingDTO, error) {
	bookings, err := s.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return booking.ToDTOs(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(b.UserID) {
		return nil, booking.ErrViewForbidden
	}
	return toDTO(b), nil
}

func (s *bookingService) RequestCancel(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	return s.transition(ctx, id, func(b *booking.Booking) error {
		if !b.IsOwnedBy(p.UserID) {
			return booking.ErrCancelForbidden
		}
		return b.RequestCancel()
	})
}

// ========================================
// ADMIN
// ========================================

func (s *bookingService) ListAll(ctx context.Context, p shared.Principal) ([]booking.BookingDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return booking.ToDTOs(bookings), nil
}

// Confirm / Cancel: admin đặt trạng thái trực tiếp, không kiểm tra trạng thái cũ
func (s *bookingService) Confirm(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	return s.adminSet(ctx, p, id, booking.StatusConfirmed)
}

func (s *bookingService) Cancel(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	return s.adminSet(ctx, p, id, booking.StatusCancelled)
}

func (s *bookingService) ApproveCancel(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, (*booking.Booking).ApproveCancel)
}

func (s *bookingService) RejectCancel(ctx context.Context, p shared.Principal, id int64) (*booking.BookingDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, (*booking.Booking).RejectCancel)
}

func (s *bookingService) Delete(ctx context.Context, p shared.Principal, id int64) error {
	if err := shared.RequireAdmin(p); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("Booking deleted", map[string]interface{}{"booking_id": id, "admin_id": p.UserID})
	return nil
}

// ========================================
// HELPERS
// ========================================

func (s *bookingService) adminSet(ctx context.Context, p shared.Principal, id int64, status booking.Status) (*booking.BookingDTO, error) {
	if err := shared.RequireAdmin(p); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, func(b *booking.Booking) error {
		logger.Info("Booking status set by admin", map[string]interface{}{
			"booking_id": b.ID,
			"admin_id":   p.UserID,
			"old_status": b.Status,
			"new_status": status,
		})
		b.Status = status
		return nil
	})
}

// transition nạp booking, áp fn rồi lưu status trong cùng transaction
func (s *bookingService) transition(ctx context.Context, id int64, fn func(b *booking.Booking) error) (*booking.BookingDTO, error) {
	var updated *booking.Booking
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
		if err := s.repo.UpdateStatus(ctx, b.ID, b.Status); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(updated), nil
}

func toDTO(b *booking.Booking) *booking.BookingDTO {
	dto := b.ToDTO()
	return &dto
}

package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodee-backend/internal/domains/booking"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/database"
)

type fakeRepo struct {
	nextID   int64
	bookings map[int64]*booking.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[int64]*booking.Booking{}}
}

func (r *fakeRepo) Create(_ context.Context, b *booking.Booking) error {
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) list(pred func(*booking.Booking) bool) []booking.Booking {
	out := []booking.Booking{}
	for _, b := range r.bookings {
		if pred(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeRepo) ListByUser(_ context.Context, userID int64) ([]booking.Booking, error) {
	return r.list(func(b *booking.Booking) bool { return b.UserID == userID }), nil
}

func (r *fakeRepo) ListAll(context.Context) ([]booking.Booking, error) {
	return r.list(func(*booking.Booking) bool { return true }), nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status booking.Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return booking.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

var (
	ict   = time.FixedZone("ICT", 7*60*60)
	owner = shared.Principal{UserID: 7, Username: "alice", Roles: []string{shared.RoleUser}}
	other = shared.Principal{UserID: 8, Username: "bob", Roles: []string{shared.RoleUser}}
	admin = shared.Principal{UserID: 1, Username: "admin", Roles: []string{shared.RoleUser, shared.RoleAdmin}}
)

func newService(repo *fakeRepo) booking.Service {
	// 2024-05-01 23:30 giờ VN (16:30 UTC)
	now := time.Date(2024, 5, 1, 16, 30, 0, 0, time.UTC)
	return NewBookingService(repo, database.NoopTxManager{}, ict, WithClock(func() time.Time { return now }))
}

func validRequest() booking.CreateBookingRequest {
	return booking.CreateBookingRequest{
		FullName:       "Nguyễn Văn A",
		PhoneNumber:    "0901234567",
		BookingDate:    "2024-05-01",
		BookingTime:    "18:30",
		NumberOfGuests: 4,
		Area:           "Tầng 2",
	}
}

func create(t *testing.T, svc booking.Service) *booking.BookingDTO {
	t.Helper()
	dto, err := svc.CreateBooking(context.Background(), owner, validRequest())
	require.NoError(t, err)
	return dto
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	dto := create(t, svc)
	assert.Equal(t, "PENDING", dto.Status)
	assert.Equal(t, "2024-05-01", dto.BookingDate, "today in local time is accepted")
	assert.Equal(t, "18:30", dto.BookingTime)
	assert.Equal(t, "alice", dto.Username)
	assert.Equal(t, int64(7), repo.bookings[dto.ID].UserID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		modify func(r *booking.CreateBookingRequest)
		want   error
	}{
		{"past date", func(r *booking.CreateBookingRequest) { r.BookingDate = "2024-04-30" }, booking.ErrBookingDateInPast},
		{"bad date", func(r *booking.CreateBookingRequest) { r.BookingDate = "01/05/2024" }, booking.ErrInvalidBookingDate},
		{"bad time", func(r *booking.CreateBookingRequest) { r.BookingTime = "25:00" }, booking.ErrInvalidBookingTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.modify(&req)
			_, err := svc.CreateBooking(ctx, owner, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	invalid := []func(r *booking.CreateBookingRequest){
		func(r *booking.CreateBookingRequest) { r.FullName = "" },
		func(r *booking.CreateBookingRequest) { r.FullName = "A1" },
		func(r *booking.CreateBookingRequest) { r.PhoneNumber = "12345" },
		func(r *booking.CreateBookingRequest) { r.NumberOfGuests = 0 },
		func(r *booking.CreateBookingRequest) { r.NumberOfGuests = 101 },
		func(r *booking.CreateBookingRequest) { r.Area = "" },
	}
	for i, modify := range invalid {
		req := validRequest()
		modify(&req)
		_, err := svc.CreateBooking(ctx, owner, req)
		require.Error(t, err, "case %d", i)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err), "case %d", i)
	}

	req := validRequest()
	req.BookingTime = "18:30:00"
	req.PhoneNumber = "+84901234567"
	dto, err := svc.CreateBooking(ctx, owner, req)
	require.NoError(t, err)
	assert.Equal(t, "18:30", dto.BookingTime)
}

func TestGetBookingAccess(t *testing.T) {
	svc := newService(newFakeRepo())
	ctx := context.Background()
	b := create(t, svc)

	_, err := svc.GetBooking(ctx, owner, b.ID)
	assert.NoError(t, err)
	_, err = svc.GetBooking(ctx, admin, b.ID)
	assert.NoError(t, err)
	_, err = svc.GetBooking(ctx, other, b.ID)
	assert.ErrorIs(t, err, booking.ErrViewForbidden)
	_, err = svc.GetBooking(ctx, owner, 99)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestRequestCancel(t *testing.T) {
	ctx := context.Background()

	for _, status := range []booking.Status{booking.StatusConfirmed, booking.StatusCancelled, booking.StatusCancelRequested} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeRepo()
			svc := newService(repo)
			b := create(t, svc)
			repo.bookings[b.ID].Status = status

			_, err := svc.RequestCancel(ctx, owner, b.ID)
			assert.ErrorIs(t, err, booking.ErrCannotRequestCancel)
			assert.Equal(t, status, repo.bookings[b.ID].Status)
		})
	}

	repo := newFakeRepo()
	svc := newService(repo)
	b := create(t, svc)

	_, err := svc.RequestCancel(ctx, other, b.ID)
	assert.ErrorIs(t, err, booking.ErrCancelForbidden)

	dto, err := svc.RequestCancel(ctx, owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCEL_REQUESTED", dto.Status)
}

func TestApproveRejectCancel(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newService(repo)

	first := create(t, svc)
	_, err := svc.ApproveCancel(ctx, admin, first.ID)
	assert.ErrorIs(t, err, booking.ErrNotCancelRequested)
	_, err = svc.RejectCancel(ctx, admin, first.ID)
	assert.ErrorIs(t, err, booking.ErrNotCancelRequested)

	_, err = svc.RequestCancel(ctx, owner, first.ID)
	require.NoError(t, err)
	_, err = svc.ApproveCancel(ctx, owner, first.ID)
	assert.ErrorIs(t, err, shared.ErrAdminRequired)

	dto, err := svc.ApproveCancel(ctx, admin, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", dto.Status)

	second := create(t, svc)
	_, err = svc.RequestCancel(ctx, owner, second.ID)
	require.NoError(t, err)
	dto, err = svc.RejectCancel(ctx, admin, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", dto.Status)
}

func TestAdminDirectStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newService(repo)
	b := create(t, svc)

	_, err := svc.Confirm(ctx, owner, b.ID)
	assert.ErrorIs(t, err, shared.ErrAdminRequired)

	dto, err := svc.Cancel(ctx, admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", dto.Status)

	// không ràng buộc trạng thái cũ
	dto, err = svc.Confirm(ctx, admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", dto.Status)

	_, err = svc.Confirm(ctx, admin, 99)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newService(repo)
	first := create(t, svc)
	second := create(t, svc)

	history, err := svc.GetHistory(ctx, owner)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)

	empty, err := svc.GetHistory(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.ListAll(ctx, owner)
	assert.ErrorIs(t, err, shared.ErrAdminRequired)
	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	repo.bookings[first.ID].Status = booking.StatusConfirmed
	assert.ErrorIs(t, svc.Delete(ctx, owner, first.ID), shared.ErrAdminRequired)
	require.NoError(t, svc.Delete(ctx, admin, first.ID))
	assert.NotContains(t, repo.bookings, first.ID)
	assert.ErrorIs(t, svc.Delete(ctx, admin, first.ID), booking.ErrBookingNotFound)
}

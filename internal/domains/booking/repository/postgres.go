package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/booking"
	"foodee-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) booking.Repository {
	return &postgresRepository{pool: pool}
}

const selectBooking = `
	SELECT b.id, b.user_id, u.username, b.full_name, b.phone_number, b.booking_date,
	       b.booking_time, b.number_of_guests, b.area, b.special_requests, b.status, b.created_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.Username, &b.FullName, &b.PhoneNumber, &b.BookingDate,
		&b.BookingTime, &b.NumberOfGuests, &b.Area, &b.SpecialRequests, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *booking.Booking) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO bookings (user_id, full_name, phone_number, booking_date, booking_time,
		                      number_of_guests, area, special_requests, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		b.UserID, b.FullName, b.PhoneNumber, b.BookingDate, b.BookingTime,
		b.NumberOfGuests, b.Area, b.SpecialRequests, b.Status, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	b, err := scanBooking(database.Conn(ctx, r.pool).QueryRow(ctx, selectBooking+` WHERE b.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) list(ctx context.Context, where string, args ...any) ([]booking.Booking, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, selectBooking+where+` ORDER BY b.created_at DESC, b.id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []booking.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID int64) ([]booking.Booking, error) {
	return r.list(ctx, ` WHERE b.user_id = $1`, userID)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]booking.Booking, error) {
	return r.list(ctx, "")
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const bookingDetailSelect = `
	SELECT
		b.booking_id, b.user_id, b.travel_id, b.number_of_seats,
		b.total_price_cents, b.booking_date, b.status,
		t.type, t.source, t.destination, t.date_time, t.price_cents
	FROM bookings b
	JOIN travel_options t ON t.travel_id = b.travel_id
`

type BookingRepo struct {
	DB sqlx.ExtContext
}

func (r BookingRepo) Create(ctx context.Context, b models.Booking) (int64, error) {
	db := executor(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	res, err := sqlx.NamedExecContext(ctx, db, `
		INSERT INTO bookings (user_id, travel_id, number_of_seats, total_price_cents, booking_date, status)
		VALUES (:user_id, :travel_id, :number_of_seats, :total_price_cents, :booking_date, :status)
	`, b)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return res.LastInsertId()
}

// ListByUser returns the user's bookings, newest first.
func (r BookingRepo) ListByUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	db := executor(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	out := []models.BookingDetail{}
	if err := sqlx.SelectContext(ctx, db, &out, bookingDetailSelect+` WHERE b.user_id = ? ORDER BY b.booking_id DESC`, userID); err != nil {
		return nil, fmt.Errorf("list bookings for user %d: %w", userID, err)
	}
	return out, nil
}

// GetForUser loads a booking only when userID owns it.
func (r BookingRepo) GetForUser(ctx context.Context, bookingID, userID int64) (models.BookingDetail, error) {
	var out models.BookingDetail
	db := executor(r.DB)
	if db == nil {
		return out, errNoDB
	}
	if bookingID <= 0 {
		return out, domain.NotFoundError{Resource: "booking"}
	}
	err := sqlx.GetContext(ctx, db, &out, bookingDetailSelect+` WHERE b.booking_id = ? AND b.user_id = ?`, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	return out, nil
}

// DeleteForUser removes the booking when userID owns it and reports whether
// a row was deleted.
func (r BookingRepo) DeleteForUser(ctx context.Context, bookingID, userID int64) (bool, error) {
	db := executor(r.DB)
	if db == nil {
		return false, errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM bookings WHERE booking_id = ? AND user_id = ?`, bookingID, userID)
	if err != nil {
		return false, fmt.Errorf("delete booking %d: %w", bookingID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

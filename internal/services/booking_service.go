package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/jmoiron/sqlx"
)

const (
	msgInvalidSeatNumber = "Please enter a valid number of seats."
	msgInvalidSeatCount  = "Invalid number of seats selected."
)

type BookingService struct {
	DB        *sqlx.DB
	RequestID string
	Now       func() time.Time
}

func (s BookingService) db() *sqlx.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ParseSeats reads the seat field of the booking form. An absent field
// means one seat; a present but non-numeric one is an error.
func ParseSeats(raw string, present bool) (int, error) {
	if !present {
		return 1, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ValidationError{Field: "seats", Msg: msgInvalidSeatNumber, Err: err}
	}
	return n, nil
}

// Book reserves seats on a travel option for userID. The option row is
// locked, the seat count checked, available_seats decremented and the
// booking inserted inside one transaction, so either both writes land or
// neither does.
func (s BookingService) Book(ctx context.Context, userID, travelID int64, seats int) (models.Booking, error) {
	if seats < 1 {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: msgInvalidSeatCount}
	}
	db := s.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "db tidak tersedia"}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "gagal membuka transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	travel := repositories.TravelOptionRepo{DB: tx}
	opt, err := travel.GetForUpdate(ctx, travelID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if seats > opt.AvailableSeats {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: msgInvalidSeatCount}
	}
	if opt.PriceCents > 0 && int64(seats) > math.MaxInt64/opt.PriceCents {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: msgInvalidSeatCount}
	}

	ok, err := travel.DecrementSeats(ctx, travelID, seats)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if !ok {
		return models.Booking{}, domain.ConflictError{Resource: "travel option", Msg: "Not enough seats available."}
	}

	booking := models.Booking{
		UserID:      userID,
		TravelID:    travelID,
		Seats:       seats,
		TotalCents:  opt.PriceCents * int64(seats),
		BookingDate: s.now(),
		Status:      models.BookingConfirmed,
	}
	id, err := repositories.BookingRepo{DB: tx}.Create(ctx, booking)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	booking.ID = id

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "gagal commit booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		"booking_id", id, "travel_id", travelID, "user_id", userID, "seats", seats,
		"seats_left", opt.AvailableSeats-seats)
	return booking, nil
}

// Cancel deletes a booking owned by userID. available_seats on the travel
// option is left unchanged.
func (s BookingService) Cancel(ctx context.Context, userID, bookingID int64) error {
	deleted, err := repositories.BookingRepo{DB: s.ext()}.DeleteForUser(ctx, bookingID, userID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !deleted {
		return domain.NotFoundError{Resource: "booking"}
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "booking_id", bookingID, "user_id", userID)
	return nil
}

// Get returns a booking owned by userID.
func (s BookingService) Get(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error) {
	b, err := repositories.BookingRepo{DB: s.ext()}.GetForUser(ctx, bookingID, userID)
	if err != nil && !domain.IsNotFound(err) {
		return b, domain.InternalError{Err: err}
	}
	return b, err
}

func (s BookingService) ListForUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	out, err := repositories.BookingRepo{DB: s.ext()}.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// ext avoids handing a typed-nil *sqlx.DB to a repository.
func (s BookingService) ext() sqlx.ExtContext {
	return extOf(s.db())
}

func extOf(db *sqlx.DB) sqlx.ExtContext {
	if db == nil {
		return nil
	}
	return db
}

package models

import (
	"time"

	"travelbook/internal/utils"
)

type BookingStatus string

// BookingConfirmed is the only status ever written; cancelling deletes the row.
const BookingConfirmed BookingStatus = "Confirmed"

type Booking struct {
	ID          int64         `db:"booking_id"`
	UserID      int64         `db:"user_id"`
	TravelID    int64         `db:"travel_id"`
	Seats       int           `db:"number_of_seats"`
	TotalCents  int64         `db:"total_price_cents"`
	BookingDate time.Time     `db:"booking_date"`
	Status      BookingStatus `db:"status"`
}

func (b Booking) TotalPrice() string {
	return utils.FormatCents(b.TotalCents)
}

// BookingDetail joins a booking with the trip it reserves.
type BookingDetail struct {
	Booking
	TravelType  TravelType `db:"type"`
	Source      string     `db:"source"`
	Destination string     `db:"destination"`
	DateTime    time.Time  `db:"date_time"`
	PriceCents  int64      `db:"price_cents"`
}

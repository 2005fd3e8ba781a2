package models

import (
	"time"

	"travelbook/internal/utils"
)

type TravelType string

const (
	TravelBus    TravelType = "Bus"
	TravelTrain  TravelType = "Train"
	TravelFlight TravelType = "Flight"
)

// TravelTypes lists the categories in the order forms offer them.
var TravelTypes = []TravelType{TravelBus, TravelTrain, TravelFlight}

func (t TravelType) Valid() bool {
	for _, v := range TravelTypes {
		if t == v {
			return true
		}
	}
	return false
}

// TravelOption is one bookable trip. AvailableSeats never goes below zero.
type TravelOption struct {
	ID             int64      `db:"travel_id"`
	Type           TravelType `db:"type"`
	Source         string     `db:"source"`
	Destination    string     `db:"destination"`
	DateTime       time.Time  `db:"date_time"`
	PriceCents     int64      `db:"price_cents"`
	AvailableSeats int        `db:"available_seats"`
}

// Price renders the per-seat price as a decimal string.
func (t TravelOption) Price() string {
	return utils.FormatCents(t.PriceCents)
}

// TravelSearch filters travel options. Empty fields are not applied.
type TravelSearch struct {
	Source      string
	Destination string
	Date        *time.Time
}

// NewTravelOption carries the fields staff submit when adding inventory.
type NewTravelOption struct {
	Type           string `form:"type" validate:"required"`
	Source         string `form:"source" validate:"required"`
	Destination    string `form:"destination" validate:"required"`
	DateTime       string `form:"date_time" validate:"required"`
	Price          string `form:"price" validate:"required"`
	AvailableSeats string `form:"available_seats" validate:"required"`
}

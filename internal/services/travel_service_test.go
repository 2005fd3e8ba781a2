package services

import (
	"context"
	"testing"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func validTravelInput() models.NewTravelOption {
	return models.NewTravelOption{
		Type:           "Bus",
		Source:         "Jakarta",
		Destination:    "Bandung",
		DateTime:       "2025-09-01T10:00",
		Price:          "100",
		AvailableSeats: "10",
	}
}

func TestParseSearch(t *testing.T) {
	f, err := ParseSearch(" Jak ", "", "2025-09-01")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if f.Source != " Jak " || f.Destination != "" || f.Date == nil || f.Date.Day() != 1 {
		t.Fatalf("unexpected filter %+v", f)
	}

	f, err = ParseSearch("", "", "")
	if err != nil || f.Date != nil {
		t.Fatalf("empty filter expected, got %+v %v", f, err)
	}

	f, _ = ParseSearch("  ", "", "")
	if f.Source != "  " {
		t.Fatalf("whitespace-only source should still filter, got %q", f.Source)
	}

	if _, err := ParseSearch("", "", "01-09-2025"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
}

func TestCreateTravelOptionMissingFieldIsAggregate(t *testing.T) {
	_, mock := newMockDB(t)

	in := validTravelInput()
	in.Destination = "   "
	_, err := TravelService{}.Create(context.Background(), in)
	got := domain.Messages(err)
	if len(got) != 1 || got[0] != msgAllFieldsRequired {
		t.Fatalf("expected single %q, got %v", msgAllFieldsRequired, got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no insert expected: %v", err)
	}
}

func TestCreateTravelOptionMalformedValues(t *testing.T) {
	newMockDB(t)

	in := validTravelInput()
	in.Type = "Boat"
	in.Price = "-1"
	in.AvailableSeats = "-3"
	in.DateTime = "next week"
	_, err := TravelService{}.Create(context.Background(), in)
	got := domain.Messages(err)
	if len(got) != 4 {
		t.Fatalf("expected 4 field errors, got %v", got)
	}
	if got[0] != "Select a valid travel type." {
		t.Fatalf("unexpected first message %q", got[0])
	}
}

func TestCreateTravelOptionInserts(t *testing.T) {
	_, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO travel_options").
		WithArgs("Bus", "Jakarta", "Bandung", departure(), 10000, 10).
		WillReturnResult(sqlmock.NewResult(11, 1))

	opt, err := TravelService{}.Create(context.Background(), validTravelInput())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if opt.ID != 11 || opt.PriceCents != 10000 || opt.AvailableSeats != 10 {
		t.Fatalf("unexpected option %+v", opt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTravelOptionAcceptsZeroSeats(t *testing.T) {
	_, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO travel_options").
		WillReturnResult(sqlmock.NewResult(12, 1))

	in := validTravelInput()
	in.AvailableSeats = "0"
	if _, err := (TravelService{}).Create(context.Background(), in); err != nil {
		t.Fatalf("zero seats should be accepted: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

package services

import (
	"context"
	"strconv"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/jmoiron/sqlx"
)

const msgAllFieldsRequired = "All fields are required."

type TravelService struct {
	DB        *sqlx.DB
	RequestID string
}

func (s TravelService) repo() repositories.TravelOptionRepo {
	db := s.DB
	if db == nil {
		db = intconfig.DB
	}
	return repositories.TravelOptionRepo{DB: extOf(db)}
}

// ParseSearch turns raw query values into a filter. Source and destination
// are kept verbatim, so a whitespace-only value still filters. date must be
// YYYY-MM-DD when given.
func ParseSearch(source, destination, date string) (models.TravelSearch, error) {
	f := models.TravelSearch{Source: source, Destination: destination}
	if d := strings.TrimSpace(date); d != "" {
		t, err := utils.ParseDate(d)
		if err != nil {
			return f, domain.ValidationError{Field: "date_time", Msg: "Enter a valid date.", Err: err}
		}
		f.Date = &t
	}
	return f, nil
}

func (s TravelService) Search(ctx context.Context, f models.TravelSearch) ([]models.TravelOption, error) {
	out, err := s.repo().Search(ctx, f)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s TravelService) Get(ctx context.Context, id int64) (models.TravelOption, error) {
	opt, err := s.repo().GetByID(ctx, id)
	if err != nil && !domain.IsNotFound(err) {
		return opt, domain.InternalError{Err: err}
	}
	return opt, err
}

// Create validates a staff submission and stores it. Any missing field
// produces a single aggregate error; malformed values are reported per field.
func (s TravelService) Create(ctx context.Context, in models.NewTravelOption) (models.TravelOption, error) {
	in = models.NewTravelOption{
		Type:           strings.TrimSpace(in.Type),
		Source:         strings.TrimSpace(in.Source),
		Destination:    strings.TrimSpace(in.Destination),
		DateTime:       strings.TrimSpace(in.DateTime),
		Price:          strings.TrimSpace(in.Price),
		AvailableSeats: strings.TrimSpace(in.AvailableSeats),
	}
	if err := validate.Struct(in); err != nil {
		return models.TravelOption{}, domain.ValidationError{Msg: msgAllFieldsRequired, Err: err}
	}

	var errs domain.ValidationErrors
	opt := models.TravelOption{
		Type:        models.TravelType(in.Type),
		Source:      in.Source,
		Destination: in.Destination,
	}
	if !opt.Type.Valid() {
		errs = append(errs, domain.ValidationError{Field: "type", Msg: "Select a valid travel type."})
	}
	if len(opt.Source) > 100 {
		errs = append(errs, domain.ValidationError{Field: "source", Msg: "Source must be at most 100 characters."})
	}
	if len(opt.Destination) > 100 {
		errs = append(errs, domain.ValidationError{Field: "destination", Msg: "Destination must be at most 100 characters."})
	}
	if t, err := utils.ParseTravelDateTime(in.DateTime); err != nil {
		errs = append(errs, domain.ValidationError{Field: "date_time", Msg: "Enter a valid date/time.", Err: err})
	} else {
		opt.DateTime = t
	}
	if cents, err := utils.ParseCents(in.Price); err != nil {
		errs = append(errs, domain.ValidationError{Field: "price", Msg: "Enter a valid price.", Err: err})
	} else {
		opt.PriceCents = cents
	}
	if n, err := strconv.Atoi(in.AvailableSeats); err != nil || n < 0 {
		errs = append(errs, domain.ValidationError{Field: "available_seats", Msg: "Available seats must be a whole number of zero or more.", Err: err})
	} else {
		opt.AvailableSeats = n
	}
	if len(errs) > 0 {
		return models.TravelOption{}, errs
	}

	id, err := s.repo().Create(ctx, opt)
	if err != nil {
		return models.TravelOption{}, domain.InternalError{Err: err}
	}
	opt.ID = id
	utils.LogEvent(s.RequestID, "travel", "create", "travel_id", id, "type", opt.Type, "seats", opt.AvailableSeats)
	return opt, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

type ProfileService struct {
	DB        *sqlx.DB
	RequestID string
}

func (s ProfileService) repo() repositories.ProfileRepo {
	db := s.DB
	if db == nil {
		db = intconfig.DB
	}
	return repositories.ProfileRepo{DB: extOf(db)}
}

// Get returns the user's profile, creating an empty one on first access.
func (s ProfileService) Get(ctx context.Context, userID int64) (models.UserProfile, error) {
	p, err := s.repo().GetOrCreate(ctx, userID)
	if err != nil {
		return p, domain.InternalError{Err: err}
	}
	return p, nil
}

// Update stores the trimmed form values. Every blank or over-long field is
// reported and nothing is written unless all three are valid.
func (s ProfileService) Update(ctx context.Context, userID int64, in models.ProfileInput) (models.UserProfile, error) {
	p := models.UserProfile{
		UserID:   userID,
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
	}

	if errs := fieldErrors(p, profileMessage); len(errs) > 0 {
		return p, errs
	}

	if err := s.repo().Upsert(ctx, p); err != nil {
		return p, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "profile", "update", "user_id", userID)
	return p, nil
}

var profileFields = map[string]struct{ column, label string }{
	"FullName": {"full_name", "Full name"},
	"Email":    {"email", "Email"},
	"Phone":    {"phone", "Phone"},
}

func profileMessage(fe validator.FieldError) domain.ValidationError {
	f := profileFields[fe.Field()]
	if fe.Tag() == "max" {
		return domain.ValidationError{Field: f.column, Msg: fmt.Sprintf("%s must be at most %s characters.", f.label, fe.Param())}
	}
	return domain.ValidationError{Field: f.column, Msg: f.label + " is required."}
}

package services

import (
	"context"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

const msgBadCredentials = "Invalid username or password."

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {},
	"123456789": {}, "1234567890": {}, "qwerty123": {}, "qwertyuiop": {},
	"iloveyou": {}, "11111111": {}, "abc12345": {}, "letmein1": {},
	"sunshine": {}, "football": {}, "baseball": {}, "welcome1": {},
}

// dummyHash keeps the cost of a failed login the same whether or not the
// username exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type AuthService struct {
	DB        *sqlx.DB
	RequestID string
	// Cost overrides bcrypt.DefaultCost; tests use bcrypt.MinCost.
	Cost int
}

func (s AuthService) users() repositories.UserRepo {
	db := s.DB
	if db == nil {
		db = intconfig.DB
	}
	return repositories.UserRepo{DB: extOf(db)}
}

func (s AuthService) cost() int {
	if s.Cost > 0 {
		return s.Cost
	}
	return bcrypt.DefaultCost
}

// Register validates the sign-up form and creates an ordinary user. Errors
// are phrased "field: message".
func (s AuthService) Register(ctx context.Context, in models.Registration) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)

	if errs := fieldErrors(in, registrationMessage); len(errs) > 0 {
		return models.User{}, errs
	}
	if errs := passwordErrors(in.Username, in.Password1); len(errs) > 0 {
		return models.User{}, errs
	}

	user, err := s.create(ctx, in.Username, in.Password1, false)
	if err != nil {
		return user, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user_id", user.ID)
	return user, nil
}

// Authenticate checks credentials. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s AuthService) Authenticate(ctx context.Context, in models.Credentials) (models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return models.User{}, domain.ValidationError{Msg: msgBadCredentials}
	}
	user, err := s.users().GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
			return models.User{}, domain.ValidationError{Msg: msgBadCredentials}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login_failed", "user_id", user.ID)
		return models.User{}, domain.ValidationError{Msg: msgBadCredentials}
	}
	return user, nil
}

// Viewer loads the current state of a signed-in user. A removed account
// yields a NotFoundError.
func (s AuthService) Viewer(ctx context.Context, userID int64) (domain.Viewer, error) {
	user, err := s.users().GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Viewer{}, err
		}
		return domain.Viewer{}, domain.InternalError{Err: err}
	}
	return domain.Viewer{UserID: domain.ID(user.ID), Username: user.Username, Staff: user.IsStaff}, nil
}

// EnsureStaff makes sure username exists with staff rights, creating it with
// password when missing. An existing user's password is left alone.
func (s AuthService) EnsureStaff(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, domain.ValidationError{Msg: "staff username and password are required"}
	}
	user, err := s.users().GetByUsername(ctx, username)
	switch {
	case err == nil:
		if !user.IsStaff {
			if err := s.users().PromoteToStaff(ctx, user.ID); err != nil {
				return user, domain.InternalError{Err: err}
			}
			user.IsStaff = true
		}
		return user, nil
	case domain.IsNotFound(err):
		return s.create(ctx, username, password, true)
	default:
		return user, domain.InternalError{Err: err}
	}
}

func (s AuthService) create(ctx context.Context, username, password string, staff bool) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}
	id, err := s.users().Create(ctx, username, string(hash), staff)
	if err != nil {
		if domain.IsConflict(err) {
			return models.User{}, err
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return models.User{ID: id, Username: username, PasswordHash: string(hash), IsStaff: staff}, nil
}

func registrationMessage(fe validator.FieldError) domain.ValidationError {
	field := strings.ToLower(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "This field is required."
	case "max":
		msg = "Ensure this value has at most 150 characters."
	case "username":
		msg = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "eqfield":
		msg = "The two password fields didn't match."
	default:
		msg = "Enter a valid value."
	}
	return domain.ValidationError{Field: field, Msg: field + ": " + msg}
}

func passwordErrors(username, password string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	add := func(msg string) {
		errs = append(errs, domain.ValidationError{Field: "password2", Msg: "password2: " + msg})
	}
	if len(password) < 8 {
		add("This password is too short. It must contain at least 8 characters.")
	}
	lower := strings.ToLower(password)
	if u := strings.ToLower(username); len(u) >= 3 && strings.Contains(lower, u) {
		add("The password is too similar to the username.")
	}
	if _, ok := commonPasswords[lower]; ok {
		add("This password is too common.")
	}
	if isAllDigits(password) {
		add("This password is entirely numeric.")
	}
	return errs
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

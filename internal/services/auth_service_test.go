package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{"id", "username", "password_hash", "is_staff", "date_joined"}

func hasMessage(err error, want string) bool {
	for _, m := range domain.Messages(err) {
		if m == want {
			return true
		}
	}
	return false
}

func TestRegisterValidation(t *testing.T) {
	newMockDB(t)
	svc := AuthService{Cost: bcrypt.MinCost}

	cases := []struct {
		name string
		in   models.Registration
		want string
	}{
		{"missing username", models.Registration{Password1: "Trav3l-Plan", Password2: "Trav3l-Plan"}, "username: This field is required."},
		{"bad username", models.Registration{Username: "ann lee", Password1: "Trav3l-Plan", Password2: "Trav3l-Plan"}, "username: Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."},
		{"too long", models.Registration{Username: strings.Repeat("a", 151), Password1: "Trav3l-Plan", Password2: "Trav3l-Plan"}, "username: Ensure this value has at most 150 characters."},
		{"mismatch", models.Registration{Username: "ann", Password1: "Trav3l-Plan", Password2: "Trav3l-Plan!"}, "password2: The two password fields didn't match."},
		{"short", models.Registration{Username: "ann", Password1: "Tr4v!", Password2: "Tr4v!"}, "password2: This password is too short. It must contain at least 8 characters."},
		{"numeric", models.Registration{Username: "ann", Password1: "80412345", Password2: "80412345"}, "password2: This password is entirely numeric."},
		{"common", models.Registration{Username: "ann", Password1: "football", Password2: "football"}, "password2: This password is too common."},
		{"similar", models.Registration{Username: "traveller", Password1: "traveller99", Password2: "traveller99"}, "password2: The password is too similar to the username."},
	}
	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.in)
		if !domain.IsValidation(err) || !hasMessage(err, tc.want) {
			t.Fatalf("%s: expected %q, got %v", tc.name, tc.want, domain.Messages(err))
		}
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	_, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("ann.lee", sqlmock.AnyArg(), false).
		WillReturnResult(sqlmock.NewResult(4, 1))

	u, err := AuthService{Cost: bcrypt.MinCost}.Register(context.Background(), models.Registration{
		Username: " ann.lee ", Password1: "Trav3l-Plan", Password2: "Trav3l-Plan",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if u.ID != 4 || u.Username != "ann.lee" || u.IsStaff {
		t.Fatalf("unexpected user %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Trav3l-Plan")) != nil {
		t.Fatalf("stored hash does not match password")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterAcceptsUnicodeLetters(t *testing.T) {
	for i, name := range []string{"józef_2", "Ярослав", "李雷"} {
		_, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO users").
			WithArgs(name, sqlmock.AnyArg(), false).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))

		u, err := AuthService{Cost: bcrypt.MinCost}.Register(context.Background(), models.Registration{
			Username: name, Password1: "Trav3l-Plan", Password2: "Trav3l-Plan",
		})
		if err != nil {
			t.Fatalf("%s: register error: %v", name, domain.Messages(err))
		}
		if u.Username != name {
			t.Fatalf("%s: unexpected user %+v", name, u)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("%s: unmet expectations: %v", name, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ann' for key 'username'"})

	_, err := AuthService{Cost: bcrypt.MinCost}.Register(context.Background(), models.Registration{
		Username: "ann", Password1: "Trav3l-Plan", Password2: "Trav3l-Plan",
	})
	if !domain.IsConflict(err) || !hasMessage(err, "username: A user with that username already exists.") {
		t.Fatalf("expected duplicate conflict, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	_, mock := newMockDB(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("Trav3l-Plan"), bcrypt.MinCost)

	mock.ExpectQuery("FROM users\\s+WHERE username = \\?").WithArgs("ann").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(4, "ann", string(hash), false, time.Now()))
	mock.ExpectQuery("FROM users\\s+WHERE username = \\?").WithArgs("ann").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(4, "ann", string(hash), false, time.Now()))
	mock.ExpectQuery("FROM users\\s+WHERE username = \\?").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	svc := AuthService{Cost: bcrypt.MinCost}
	u, err := svc.Authenticate(context.Background(), models.Credentials{Username: "ann", Password: "Trav3l-Plan"})
	if err != nil || u.ID != 4 {
		t.Fatalf("expected login, got %+v %v", u, err)
	}
	for _, creds := range []models.Credentials{
		{Username: "ann", Password: "wrong"},
		{Username: "ghost", Password: "Trav3l-Plan"},
		{Username: "", Password: "x"},
	} {
		_, err := svc.Authenticate(context.Background(), creds)
		if !domain.IsValidation(err) || err.Error() != msgBadCredentials {
			t.Fatalf("%+v: expected %q, got %v", creds, msgBadCredentials, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureStaffPromotesExistingUser(t *testing.T) {
	_, mock := newMockDB(t)

	mock.ExpectQuery("FROM users").WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "admin", "x", false, time.Now()))
	mock.ExpectExec("UPDATE users SET is_staff = 1 WHERE id = \\?").WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := AuthService{Cost: bcrypt.MinCost}.EnsureStaff(context.Background(), "admin", "whatever")
	if err != nil || !u.IsStaff {
		t.Fatalf("expected staff user, got %+v %v", u, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureStaffCreatesMissingUser(t *testing.T) {
	_, mock := newMockDB(t)

	mock.ExpectQuery("FROM users").WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectExec("INSERT INTO users").WithArgs("admin", sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	u, err := AuthService{Cost: bcrypt.MinCost}.EnsureStaff(context.Background(), "admin", "Adm1n-Secret")
	if err != nil || !u.IsStaff || u.ID != 1 {
		t.Fatalf("expected created staff user, got %+v %v", u, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

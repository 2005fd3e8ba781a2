package repositories

import (
	"context"
	"errors"
	"testing"

	"travelbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestUserCreateDuplicateIsConflict(t *testing.T) {
	db, mock := newRepoMock(t)

	mock.ExpectExec("INSERT INTO users").WithArgs("ann", "hash", false).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectExec("INSERT INTO users").WithArgs("bob", "hash", false).
		WillReturnError(errors.New("connection reset"))

	repo := UserRepo{DB: db}
	if _, err := repo.Create(context.Background(), "ann", "hash", false); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := repo.Create(context.Background(), "bob", "hash", false); err == nil || domain.IsConflict(err) {
		t.Fatalf("expected plain error, got %v", err)
	}
}

func TestUserRepoWithoutDB(t *testing.T) {
	if _, err := (UserRepo{}).Count(context.Background()); err == nil {
		t.Fatalf("expected error without a database")
	}
}

func TestBookingDeleteForUserScopesByOwner(t *testing.T) {
	db, mock := newRepoMock(t)

	mock.ExpectExec("DELETE FROM bookings WHERE booking_id = \\? AND user_id = \\?").
		WithArgs(5, 8).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := BookingRepo{DB: db}.DeleteForUser(context.Background(), 5, 8)
	if err != nil || ok {
		t.Fatalf("expected nothing deleted, got %v %v", ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

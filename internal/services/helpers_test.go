package services

import (
	"testing"
	"time"

	intconfig "travelbook/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

var travelOptionColumns = []string{"travel_id", "type", "source", "destination", "date_time", "price_cents", "available_seats"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	db := sqlx.NewDb(raw, "mysql")
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		_ = raw.Close()
	})
	return db, mock
}

func departure() time.Time {
	return time.Date(2025, 9, 1, 10, 0, 0, 0, time.Local)
}

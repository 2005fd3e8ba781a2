package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/utils"

	"github.com/jmoiron/sqlx"
)

const travelOptionCols = `travel_id, type, source, destination, date_time, price_cents, available_seats`

// TravelOptionRepo reads and writes travel_options. DB may be a *sqlx.DB or
// a *sqlx.Tx.
type TravelOptionRepo struct {
	DB sqlx.ExtContext
}

func (r TravelOptionRepo) GetByID(ctx context.Context, id int64) (models.TravelOption, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate loads the row and locks it until the surrounding transaction
// ends. Only meaningful when DB is a transaction.
func (r TravelOptionRepo) GetForUpdate(ctx context.Context, id int64) (models.TravelOption, error) {
	return r.get(ctx, id, true)
}

func (r TravelOptionRepo) get(ctx context.Context, id int64, lock bool) (models.TravelOption, error) {
	var out models.TravelOption
	db := executor(r.DB)
	if db == nil {
		return out, errNoDB
	}
	if id <= 0 {
		return out, domain.NotFoundError{Resource: "travel option"}
	}
	query := `SELECT ` + travelOptionCols + ` FROM travel_options WHERE travel_id = ?`
	if lock {
		query += ` FOR UPDATE`
	}
	if err := sqlx.GetContext(ctx, db, &out, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "travel option", Err: err}
		}
		return out, fmt.Errorf("get travel option %d: %w", id, err)
	}
	return out, nil
}

// Search returns options matching every non-empty filter, by travel_id.
// Source and destination match as case-insensitive substrings, untrimmed;
// Date matches the calendar date of date_time.
func (r TravelOptionRepo) Search(ctx context.Context, f models.TravelSearch) ([]models.TravelOption, error) {
	db := executor(r.DB)
	if db == nil {
		return nil, errNoDB
	}

	where := []string{"1=1"}
	args := []any{}
	if f.Source != "" {
		where = append(where, "LOWER(source) LIKE LOWER(?)")
		args = append(args, intdb.LikeContains(f.Source))
	}
	if f.Destination != "" {
		where = append(where, "LOWER(destination) LIKE LOWER(?)")
		args = append(args, intdb.LikeContains(f.Destination))
	}
	if f.Date != nil {
		where = append(where, "DATE(date_time) = ?")
		args = append(args, utils.FormatDate(*f.Date))
	}

	query := `SELECT ` + travelOptionCols + ` FROM travel_options WHERE ` + strings.Join(where, " AND ") + ` ORDER BY travel_id ASC`

	out := []models.TravelOption{}
	if err := sqlx.SelectContext(ctx, db, &out, query, args...); err != nil {
		return nil, fmt.Errorf("search travel options: %w", err)
	}
	return out, nil
}

func (r TravelOptionRepo) Create(ctx context.Context, t models.TravelOption) (int64, error) {
	db := executor(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	res, err := sqlx.NamedExecContext(ctx, db, `
		INSERT INTO travel_options (type, source, destination, date_time, price_cents, available_seats)
		VALUES (:type, :source, :destination, :date_time, :price_cents, :available_seats)
	`, t)
	if err != nil {
		return 0, fmt.Errorf("insert travel option: %w", err)
	}
	return res.LastInsertId()
}

// DecrementSeats subtracts seats only while enough remain. It reports false
// when the row is missing or has fewer than seats available.
func (r TravelOptionRepo) DecrementSeats(ctx context.Context, id int64, seats int) (bool, error) {
	db := executor(r.DB)
	if db == nil {
		return false, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		UPDATE travel_options
		SET available_seats = available_seats - ?
		WHERE travel_id = ? AND available_seats >= ?
	`, seats, id, seats)
	if err != nil {
		return false, fmt.Errorf("decrement seats for travel option %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

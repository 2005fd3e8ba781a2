package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const mysqlDuplicateEntry = 1062

type UserRepo struct {
	DB sqlx.ExtContext
}

// Create inserts a user. A taken username yields a ConflictError.
func (r UserRepo) Create(ctx context.Context, username, passwordHash string, staff bool) (int64, error) {
	db := executor(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, is_staff, date_joined)
		VALUES (?, ?, ?, NOW())
	`, username, passwordHash, staff)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return 0, domain.ConflictError{Resource: "user", Msg: "username: A user with that username already exists.", Err: err}
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (r UserRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r UserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r UserRepo) getBy(ctx context.Context, col string, val any) (models.User, error) {
	var out models.User
	db := executor(r.DB)
	if db == nil {
		return out, errNoDB
	}
	err := sqlx.GetContext(ctx, db, &out, `
		SELECT id, username, password_hash, is_staff, date_joined
		FROM users
		WHERE `+col+` = ?
	`, val)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "user", Err: err}
		}
		return out, fmt.Errorf("get user by %s: %w", col, err)
	}
	return out, nil
}

// PromoteToStaff grants the staff flag to an existing user.
func (r UserRepo) PromoteToStaff(ctx context.Context, id int64) error {
	db := executor(r.DB)
	if db == nil {
		return errNoDB
	}
	if _, err := db.ExecContext(ctx, `UPDATE users SET is_staff = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("promote user %d: %w", id, err)
	}
	return nil
}

func (r UserRepo) Count(ctx context.Context) (int, error) {
	db := executor(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	var n int
	if err := sqlx.GetContext(ctx, db, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

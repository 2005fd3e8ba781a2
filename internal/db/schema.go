package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tableDDL struct {
	name string
	ddl  string
}

// Order matters: bookings and user_profiles reference users/travel_options.
var schema = []tableDDL{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(150) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	is_staff TINYINT(1) NOT NULL DEFAULT 0,
	date_joined TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"travel_options", `
CREATE TABLE IF NOT EXISTS travel_options (
	travel_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	type VARCHAR(10) NOT NULL,
	source VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	date_time DATETIME NOT NULL,
	price_cents BIGINT NOT NULL,
	available_seats INT UNSIGNED NOT NULL,
	KEY idx_date_time (date_time)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	travel_id BIGINT NOT NULL,
	number_of_seats INT UNSIGNED NOT NULL,
	total_price_cents BIGINT NOT NULL,
	booking_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	status VARCHAR(10) NOT NULL,
	KEY idx_user (user_id),
	CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT fk_bookings_travel FOREIGN KEY (travel_id) REFERENCES travel_options(travel_id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"user_profiles", `
CREATE TABLE IF NOT EXISTS user_profiles (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	full_name VARCHAR(100) NOT NULL DEFAULT '',
	email VARCHAR(254) NOT NULL DEFAULT '',
	phone VARCHAR(15) NOT NULL DEFAULT '',
	UNIQUE KEY uniq_user (user_id),
	CONSTRAINT fk_profiles_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
}

// EnsureSchema creates any missing application table. Existing tables are
// left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("db tidak tersedia")
	}
	for _, t := range schema {
		if HasTable(ctx, db, t.name) {
			continue
		}
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}

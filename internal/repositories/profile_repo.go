package repositories

import (
	"context"
	"fmt"

	"travelbook/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type ProfileRepo struct {
	DB sqlx.ExtContext
}

// GetOrCreate returns the user's profile, inserting an empty one first if
// none exists yet.
func (r ProfileRepo) GetOrCreate(ctx context.Context, userID int64) (models.UserProfile, error) {
	var out models.UserProfile
	db := executor(r.DB)
	if db == nil {
		return out, errNoDB
	}
	if _, err := db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id) VALUES (?)
		ON DUPLICATE KEY UPDATE user_id = user_id
	`, userID); err != nil {
		return out, fmt.Errorf("create profile for user %d: %w", userID, err)
	}
	if err := sqlx.GetContext(ctx, db, &out, `
		SELECT id, user_id, full_name, email, phone
		FROM user_profiles
		WHERE user_id = ?
	`, userID); err != nil {
		return out, fmt.Errorf("get profile for user %d: %w", userID, err)
	}
	return out, nil
}

// Upsert writes all profile fields for p.UserID.
func (r ProfileRepo) Upsert(ctx context.Context, p models.UserProfile) error {
	db := executor(r.DB)
	if db == nil {
		return errNoDB
	}
	_, err := sqlx.NamedExecContext(ctx, db, `
		INSERT INTO user_profiles (user_id, full_name, email, phone)
		VALUES (:user_id, :full_name, :email, :phone)
		ON DUPLICATE KEY UPDATE full_name=VALUES(full_name), email=VALUES(email), phone=VALUES(phone)
	`, p)
	if err != nil {
		return fmt.Errorf("upsert profile for user %d: %w", p.UserID, err)
	}
	return nil
}

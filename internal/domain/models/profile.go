package models

// UserProfile limits mirror the user_profiles column sizes.
type UserProfile struct {
	ID       int64  `db:"id"`
	UserID   int64  `db:"user_id"`
	FullName string `db:"full_name" validate:"required,max=100"`
	Email    string `db:"email" validate:"required,max=254"`
	Phone    string `db:"phone" validate:"required,max=15"`
}

// ProfileInput is the raw profile form.
type ProfileInput struct {
	FullName string `form:"full_name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
}

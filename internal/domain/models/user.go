package models

import "time"

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	IsStaff      bool      `db:"is_staff"`
	DateJoined   time.Time `db:"date_joined"`
}

// Registration is the sign-up form: username up to 150 chars of letters,
// digits and @.+-_, and the password typed twice.
type Registration struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password1 string `form:"password1" validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

type Credentials struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

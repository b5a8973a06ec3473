package user

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// User represents an account holder. Email doubles as the login identifier.
type User struct {
	ID            uuid.UUID `db:"id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	EmailVerified bool      `db:"email_verified"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

// UserUpdate carries the profile fields a user may change. Unset fields are
// left untouched.
type UserUpdate struct {
	FirstName omit.Val[string]
	LastName  omit.Val[string]
}

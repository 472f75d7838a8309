package models

import "time"

// User represents an account entity used for authentication and note ownership.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the unique e-mail address of the user. Notes are shared by
	// addressing the recipient's e-mail.
	Email string `json:"email"`

	// Password carries the plain-text password only on inbound register and
	// login requests. It is never persisted; responses clear it via Public.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user safe to serialise in API responses:
// credential fields are cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

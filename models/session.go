package models

import "time"

// Session is the client-side authenticated session persisted between runs of
// the terminal client. The token is the raw signed JWT received from the
// server; the client never inspects it beyond expiry checks.
type Session struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

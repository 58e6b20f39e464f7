package domain

import "time"

// User models an account holder. Only the bcrypt hash of the password is
// kept; the plaintext never leaves the signup request.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

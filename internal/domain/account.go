package domain

import "time"

// Account is the domain entity for a registered user account.
// PasswordHash is a bcrypt hash; the plain password never leaves the
// registration request.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

package domain

import "time"

// User is a credential record used by the access gate.
// PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

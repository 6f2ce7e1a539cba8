package users

import "time"

// User is a persisted credential record. PasswordHash holds the opaque
// bcrypt output; the plaintext never reaches storage.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id PHC string
	Tokens       []SessionToken
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionToken is one live login. Only the token fingerprint is kept; the
// raw token is handed to the client once and never stored.
type SessionToken struct {
	Access    string
	TokenHash string
	CreatedAt time.Time
}

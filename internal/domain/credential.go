package domain

import "time"

// Credential is a static portal login record checked at sign-in.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

package domain

import "time"

// User is the domain model for registered residents.
// PasswordHash never leaves the service layer.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
}

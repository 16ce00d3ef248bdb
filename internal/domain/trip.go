package domain

import "time"

// TripStatus enumerates lifecycle states for trips.
type TripStatus string

const (
	TripStatusOpen   TripStatus = "open"
	TripStatusClosed TripStatus = "closed"
)

// Trip records one runner heading to one shop at a scheduled time,
// visible to a bhawan until its creator closes it. Closed is terminal.
type Trip struct {
	ID            int64
	RunnerName    string
	ShopName      string
	DepartureTime time.Time
	Status        TripStatus
	CreatedAt     time.Time
	Bhawan        string
	CreatorID     int64
}

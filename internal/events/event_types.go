package events

import (
	"time"

	"github.com/spec-kit/trip-board/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTripCreated EventType = "trip_created"
	EventTripClosed  EventType = "trip_closed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TripID    int64       `json:"trip_id"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TripCreatedPayload payload.
type TripCreatedPayload struct {
	RunnerName    string    `json:"runner_name"`
	ShopName      string    `json:"shop_name"`
	Bhawan        string    `json:"bhawan"`
	DepartureTime time.Time `json:"departure_time"`
}

// TripClosedPayload payload.
type TripClosedPayload struct {
	Bhawan    string            `json:"bhawan"`
	OldStatus domain.TripStatus `json:"old_status"`
	NewStatus domain.TripStatus `json:"new_status"`
}

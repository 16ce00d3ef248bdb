package dto

import (
	"time"

	"github.com/spec-kit/trip-board/internal/domain"
	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

// departureLayouts accepts RFC 3339 plus the timezone-less form HTML
// datetime-local inputs produce.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// CreateTripRequest payload for new trips. The creator never comes from the
// body; it is taken from the authenticated principal.
type CreateTripRequest struct {
	RunnerName    string `json:"runner_name"`
	ShopName      string `json:"shop_name"`
	DepartureTime string `json:"departure_time"`
	Bhawan        string `json:"bhawan"`
}

// Validate rejects the request at the boundary and parses the departure
// time. Details carry field names only.
func (r CreateTripRequest) Validate() (time.Time, error) {
	missing := map[string]any{}
	if r.RunnerName == "" {
		missing["runner_name"] = "required"
	}
	if r.ShopName == "" {
		missing["shop_name"] = "required"
	}
	if r.DepartureTime == "" {
		missing["departure_time"] = "required"
	}
	if r.Bhawan == "" {
		missing["bhawan"] = "required"
	}
	if len(missing) > 0 {
		return time.Time{}, apperrors.NewValidationError("runner_name, shop_name, departure_time, and bhawan are required", missing)
	}

	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, r.DepartureTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("invalid departure_time", map[string]any{"departure_time": "invalid"})
}

// TripResponse is the wire representation of a trip.
type TripResponse struct {
	ID            int64             `json:"id"`
	RunnerName    string            `json:"runner_name"`
	ShopName      string            `json:"shop_name"`
	DepartureTime time.Time         `json:"departure_time"`
	Status        domain.TripStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	Bhawan        string            `json:"bhawan"`
	CreatorID     int64             `json:"creator_id"`
}

// NewTripResponse projects a domain trip.
func NewTripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:            trip.ID,
		RunnerName:    trip.RunnerName,
		ShopName:      trip.ShopName,
		DepartureTime: trip.DepartureTime,
		Status:        trip.Status,
		CreatedAt:     trip.CreatedAt,
		Bhawan:        trip.Bhawan,
		CreatorID:     trip.CreatorID,
	}
}

// NewTripListResponse projects a slice, always non-nil.
func NewTripListResponse(trips []domain.Trip) []TripResponse {
	items := make([]TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, NewTripResponse(&trips[i]))
	}
	return items
}

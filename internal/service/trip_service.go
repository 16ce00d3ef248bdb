package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/trip-board/internal/cache"
	"github.com/spec-kit/trip-board/internal/domain"
	"github.com/spec-kit/trip-board/internal/events"
	"github.com/spec-kit/trip-board/internal/repository"
	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

// TripService coordinates trip listings and the open->closed transition.
type TripService struct {
	trips      repository.TripRepository
	cache      cache.TripCache
	dispatcher events.Dispatcher
}

// TripCreateInput describes trip creation payload. The creator is never part
// of it; identity comes from the authenticated principal.
type TripCreateInput struct {
	RunnerName    string
	ShopName      string
	DepartureTime time.Time
	Bhawan        string
}

// NewTripService constructs the service.
func NewTripService(trips repository.TripRepository, tripCache cache.TripCache, dispatcher events.Dispatcher) *TripService {
	if tripCache == nil {
		tripCache = cache.NewNoopTripCache()
	}
	return &TripService{trips: trips, cache: tripCache, dispatcher: dispatcher}
}

// ListOpen returns open trips, optionally restricted to one bhawan, ordered
// by departure time. The result is always a non-nil slice.
func (s *TripService) ListOpen(ctx context.Context, bhawan *string) ([]domain.Trip, error) {
	if trips, ok := s.cache.Get(ctx, bhawan); ok {
		return trips, nil
	}

	trips, err := s.trips.ListOpen(ctx, bhawan)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	s.cache.Set(ctx, bhawan, trips)
	return trips, nil
}

// Create persists a new trip for the creator. Status is always open
// regardless of input.
func (s *TripService) Create(ctx context.Context, creatorID int64, input TripCreateInput) (*domain.Trip, error) {
	trip := &domain.Trip{
		RunnerName:    input.RunnerName,
		ShopName:      input.ShopName,
		DepartureTime: input.DepartureTime,
		Bhawan:        input.Bhawan,
		Status:        domain.TripStatusOpen,
		CreatorID:     creatorID,
	}
	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTripCreated,
		TripID:    trip.ID,
		ActorID:   creatorID,
		Timestamp: time.Now(),
		Payload: events.TripCreatedPayload{
			RunnerName:    trip.RunnerName,
			ShopName:      trip.ShopName,
			Bhawan:        trip.Bhawan,
			DepartureTime: trip.DepartureTime,
		},
	})
	return trip, nil
}

// Close transitions one trip from open to closed. The conditional update in
// the repository means a missing trip, an already-closed trip and a
// non-creator requester are indistinguishable here; all three surface as the
// same forbidden error.
func (s *TripService) Close(ctx context.Context, tripID, requesterID int64) (*domain.Trip, error) {
	trip, err := s.trips.Close(ctx, tripID, requesterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewForbidden("you are not allowed to close this trip")
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTripClosed,
		TripID:    trip.ID,
		ActorID:   requesterID,
		Timestamp: time.Now(),
		Payload: events.TripClosedPayload{
			Bhawan:    trip.Bhawan,
			OldStatus: domain.TripStatusOpen,
			NewStatus: trip.Status,
		},
	})
	return trip, nil
}

func (s *TripService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/trip-board/internal/domain"
)

// TripRepository encapsulates trip persistence and status transitions.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	ListOpen(ctx context.Context, bhawan *string) ([]domain.Trip, error)
	// Close flips one trip from open to closed, but only when the
	// requester created it and the trip is still open. The check and the
	// write are one conditional statement so concurrent closes cannot
	// both succeed. Zero rows affected surfaces as pgx.ErrNoRows.
	Close(ctx context.Context, tripID, requesterID int64) (*domain.Trip, error)
}

type tripRepository struct {
	pool *pgxpool.Pool
}

// NewTripRepository instantiates the repository.
func NewTripRepository(pool *pgxpool.Pool) TripRepository {
	return &tripRepository{pool: pool}
}

const tripColumns = `id, runner_name, shop_name, departure_time, status, created_at, bhawan, creator_id`

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	const query = `
        INSERT INTO trips (runner_name, shop_name, departure_time, bhawan, status, creator_id)
        VALUES ($1, $2, $3, $4, 'open', $5)
        RETURNING id, status, created_at`

	return r.pool.QueryRow(ctx, query,
		trip.RunnerName,
		trip.ShopName,
		trip.DepartureTime,
		trip.Bhawan,
		trip.CreatorID,
	).Scan(&trip.ID, &trip.Status, &trip.CreatedAt)
}

func (r *tripRepository) ListOpen(ctx context.Context, bhawan *string) ([]domain.Trip, error) {
	query := `
        SELECT ` + tripColumns + `
        FROM trips
        WHERE status = 'open'`
	args := []any{}
	if bhawan != nil {
		args = append(args, *bhawan)
		query += ` AND bhawan = $1`
	}
	// id breaks departure-time ties so listings are deterministic.
	query += ` ORDER BY departure_time ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrips(rows)
}

func (r *tripRepository) Close(ctx context.Context, tripID, requesterID int64) (*domain.Trip, error) {
	const query = `
        UPDATE trips
        SET status = 'closed'
        WHERE id = $1
          AND status = 'open'
          AND creator_id = $2
        RETURNING ` + tripColumns

	var trip domain.Trip
	if err := r.pool.QueryRow(ctx, query, tripID, requesterID).Scan(
		&trip.ID,
		&trip.RunnerName,
		&trip.ShopName,
		&trip.DepartureTime,
		&trip.Status,
		&trip.CreatedAt,
		&trip.Bhawan,
		&trip.CreatorID,
	); err != nil {
		return nil, err
	}
	return &trip, nil
}

func scanTrips(rows pgx.Rows) ([]domain.Trip, error) {
	result := make([]domain.Trip, 0)
	for rows.Next() {
		var trip domain.Trip
		if err := rows.Scan(
			&trip.ID,
			&trip.RunnerName,
			&trip.ShopName,
			&trip.DepartureTime,
			&trip.Status,
			&trip.CreatedAt,
			&trip.Bhawan,
			&trip.CreatorID,
		); err != nil {
			return nil, err
		}
		result = append(result, trip)
	}
	return result, rows.Err()
}

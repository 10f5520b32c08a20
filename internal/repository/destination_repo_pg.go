package repository

import (
	"context"
	"errors"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DestinationFilter struct {
	Type     domain.DestinationType
	Featured bool
}

type DestinationRepository interface {
	List(ctx context.Context, filter DestinationFilter) ([]domain.Destination, error)
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
}

type PGDestinationRepository struct {
	db *pgxpool.Pool
}

func NewDestinationRepository(db *pgxpool.Pool) DestinationRepository {
	return &PGDestinationRepository{db: db}
}

const destinationColumns = `id, name, type, description, image_url, distance, travel_time, created_at, updated_at`

func (r *PGDestinationRepository) List(ctx context.Context, filter DestinationFilter) ([]domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations`
	args := []any{}
	if filter.Type != "" {
		query += ` WHERE type=$1`
		args = append(args, filter.Type)
	}
	query += ` ORDER BY name`
	if filter.Featured {
		query += ` LIMIT 3`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0)
	for rows.Next() {
		var d domain.Destination
		if err := scanDestination(rows, &d); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

func (r *PGDestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	row := r.db.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id=$1`, id)
	var d domain.Destination
	if err := scanDestination(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	trips, err := loadTrips(ctx, r.db, `WHERE t.destination_id=$1 ORDER BY t.departure_date`, id)
	if err != nil {
		return nil, err
	}
	d.Trips = trips

	rows, err := r.db.Query(ctx, `SELECT `+accommodationColumns+` FROM accommodations WHERE destination_id=$1 ORDER BY price`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Accommodation
		if err := scanAccommodation(rows, &a); err != nil {
			return nil, err
		}
		d.Accommodations = append(d.Accommodations, a)
	}
	return &d, rows.Err()
}

func scanDestination(row pgx.Row, d *domain.Destination) error {
	return row.Scan(&d.ID, &d.Name, &d.Type, &d.Description, &d.ImageURL, &d.Distance, &d.TravelTime, &d.CreatedAt, &d.UpdatedAt)
}

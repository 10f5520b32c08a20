package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccommodationFilter struct {
	DestinationID string
	Type          domain.AccommodationType
	MinPrice      *int64
	MaxPrice      *int64
}

type AccommodationRepository interface {
	List(ctx context.Context, filter AccommodationFilter) ([]domain.Accommodation, error)
	GetByID(ctx context.Context, id string) (*domain.Accommodation, error)
}

type PGAccommodationRepository struct {
	db *pgxpool.Pool
}

func NewAccommodationRepository(db *pgxpool.Pool) AccommodationRepository {
	return &PGAccommodationRepository{db: db}
}

const accommodationColumns = `id, destination_id, name, description, image_url, type, price, rating, amenities, max_occupancy, created_at, updated_at`

func (r *PGAccommodationRepository) List(ctx context.Context, filter AccommodationFilter) ([]domain.Accommodation, error) {
	query := `SELECT a.id, a.destination_id, a.name, a.description, a.image_url, a.type, a.price, a.rating, a.amenities, a.max_occupancy, a.created_at, a.updated_at, ` +
		destinationColumnsPrefixed("d") + `
		FROM accommodations a JOIN destinations d ON d.id = a.destination_id`
	args := []any{}
	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.DestinationID != "" {
		args = append(args, filter.DestinationID)
		and(fmt.Sprintf("a.destination_id=$%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		and(fmt.Sprintf("a.type=$%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		and(fmt.Sprintf("a.price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		and(fmt.Sprintf("a.price <= $%d", len(args)))
	}
	query += where + ` ORDER BY a.price`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accommodations := make([]domain.Accommodation, 0)
	for rows.Next() {
		var a domain.Accommodation
		var d domain.Destination
		if err := rows.Scan(
			&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.ImageURL, &a.Type, &a.Price, &a.Rating, &a.Amenities, &a.MaxOccupancy, &a.CreatedAt, &a.UpdatedAt,
			&d.ID, &d.Name, &d.Type, &d.Description, &d.ImageURL, &d.Distance, &d.TravelTime, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Destination = &d
		accommodations = append(accommodations, a)
	}
	return accommodations, rows.Err()
}

func (r *PGAccommodationRepository) GetByID(ctx context.Context, id string) (*domain.Accommodation, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.destination_id, a.name, a.description, a.image_url, a.type, a.price, a.rating, a.amenities, a.max_occupancy, a.created_at, a.updated_at, `+
		destinationColumnsPrefixed("d")+`
		FROM accommodations a JOIN destinations d ON d.id = a.destination_id WHERE a.id=$1`, id)
	var a domain.Accommodation
	var d domain.Destination
	if err := row.Scan(
		&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.ImageURL, &a.Type, &a.Price, &a.Rating, &a.Amenities, &a.MaxOccupancy, &a.CreatedAt, &a.UpdatedAt,
		&d.ID, &d.Name, &d.Type, &d.Description, &d.ImageURL, &d.Distance, &d.TravelTime, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	a.Destination = &d
	return &a, nil
}

func scanAccommodation(row pgx.Row, a *domain.Accommodation) error {
	return row.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.ImageURL, &a.Type, &a.Price, &a.Rating, &a.Amenities, &a.MaxOccupancy, &a.CreatedAt, &a.UpdatedAt)
}

var _ AccommodationRepository = (*PGAccommodationRepository)(nil)

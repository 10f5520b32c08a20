package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TripFilter struct {
	// Destination matches the destination name, case-insensitive substring.
	Destination string
	// DepartsOn keeps trips departing on or after the start of the given day.
	DepartsOn *time.Time
	// MinSeats keeps trips with at least this many available seats.
	MinSeats int
}

type TripRepository interface {
	List(ctx context.Context, filter TripFilter) ([]domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	GetPackage(ctx context.Context, id string) (*domain.TripPackage, error)
}

type PGTripRepository struct {
	db *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) TripRepository {
	return &PGTripRepository{db: db}
}

const tripColumns = `t.id, t.destination_id, t.name, t.description, t.departure_date, t.return_date, t.available_seats, t.created_at, t.updated_at`

func (r *PGTripRepository) List(ctx context.Context, filter TripFilter) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + `, ` + destinationColumnsPrefixed("d") + `
		FROM trips t JOIN destinations d ON d.id = t.destination_id`
	args := []any{}
	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		and(fmt.Sprintf("d.name ILIKE $%d", len(args)))
	}
	if filter.DepartsOn != nil {
		day := filter.DepartsOn.Truncate(24 * time.Hour)
		args = append(args, day)
		and(fmt.Sprintf("t.departure_date >= $%d", len(args)))
	}
	if filter.MinSeats > 0 {
		args = append(args, filter.MinSeats)
		and(fmt.Sprintf("t.available_seats >= $%d", len(args)))
	}
	query += where + ` ORDER BY t.departure_date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		var t domain.Trip
		var d domain.Destination
		if err := rows.Scan(
			&t.ID, &t.DestinationID, &t.Name, &t.Description, &t.DepartureDate, &t.ReturnDate, &t.AvailableSeats, &t.CreatedAt, &t.UpdatedAt,
			&d.ID, &d.Name, &d.Type, &d.Description, &d.ImageURL, &d.Distance, &d.TravelTime, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Destination = &d
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachPackages(ctx, r.db, trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *PGTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tripColumns+`, `+destinationColumnsPrefixed("d")+`
		FROM trips t JOIN destinations d ON d.id = t.destination_id WHERE t.id=$1`, id)
	var t domain.Trip
	var d domain.Destination
	if err := row.Scan(
		&t.ID, &t.DestinationID, &t.Name, &t.Description, &t.DepartureDate, &t.ReturnDate, &t.AvailableSeats, &t.CreatedAt, &t.UpdatedAt,
		&d.ID, &d.Name, &d.Type, &d.Description, &d.ImageURL, &d.Distance, &d.TravelTime, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	t.Destination = &d

	trips := []domain.Trip{t}
	if err := attachPackages(ctx, r.db, trips); err != nil {
		return nil, err
	}
	return &trips[0], nil
}

func (r *PGTripRepository) GetPackage(ctx context.Context, id string) (*domain.TripPackage, error) {
	row := r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM trip_packages p WHERE p.id=$1`, id)
	var p domain.TripPackage
	if err := scanPackage(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

const packageColumns = `p.id, p.trip_id, p.seat_class_id, p.name, p.description, p.price, p.features, p.max_capacity`

func scanPackage(row pgx.Row, p *domain.TripPackage) error {
	return row.Scan(&p.ID, &p.TripID, &p.SeatClassID, &p.Name, &p.Description, &p.Price, &p.Features, &p.MaxCapacity)
}

// attachPackages loads the packages (with their seat classes) for every trip
// in the slice, in one query.
func attachPackages(ctx context.Context, db *pgxpool.Pool, trips []domain.Trip) error {
	if len(trips) == 0 {
		return nil
	}
	ids := make([]string, len(trips))
	byID := make(map[string]*domain.Trip, len(trips))
	for i := range trips {
		ids[i] = trips[i].ID
		byID[trips[i].ID] = &trips[i]
	}

	rows, err := db.Query(ctx, `SELECT `+packageColumns+`, s.id, s.name, s.description, s.amenities
		FROM trip_packages p JOIN seat_classes s ON s.id = p.seat_class_id
		WHERE p.trip_id = ANY($1) ORDER BY p.price`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.TripPackage
		var s domain.SeatClass
		if err := rows.Scan(
			&p.ID, &p.TripID, &p.SeatClassID, &p.Name, &p.Description, &p.Price, &p.Features, &p.MaxCapacity,
			&s.ID, &s.Name, &s.Description, &s.Amenities,
		); err != nil {
			return err
		}
		p.SeatClass = &s
		if t, ok := byID[p.TripID]; ok {
			t.Packages = append(t.Packages, p)
		}
	}
	return rows.Err()
}

// loadTrips fetches trips with their packages using a caller-supplied suffix
// (WHERE/ORDER BY clauses referencing alias t).
func loadTrips(ctx context.Context, db *pgxpool.Pool, suffix string, args ...any) ([]domain.Trip, error) {
	rows, err := db.Query(ctx, `SELECT `+tripColumns+` FROM trips t `+suffix, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(&t.ID, &t.DestinationID, &t.Name, &t.Description, &t.DepartureDate, &t.ReturnDate, &t.AvailableSeats, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachPackages(ctx, db, trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func destinationColumnsPrefixed(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.name, %[1]s.type, %[1]s.description, %[1]s.image_url, %[1]s.distance, %[1]s.travel_time, %[1]s.created_at, %[1]s.updated_at`, alias)
}

var _ TripRepository = (*PGTripRepository)(nil)

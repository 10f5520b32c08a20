package repository

import (
	"context"
	"errors"
	"time"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create inserts the booking and reserves its seats in one transaction.
	Create(ctx context.Context, booking *domain.Booking) error
	GetForUser(ctx context.Context, id, userID string) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	// Cancel marks the booking cancelled and returns its seats to the trip
	// in one transaction. A booking that is already cancelled is returned
	// unchanged without touching the seats.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The guard keeps available_seats from ever going negative; no rows
	// means either a missing trip or not enough seats left.
	cmd, err := tx.Exec(ctx, `UPDATE trips SET available_seats = available_seats - $2, updated_at = now()
		WHERE id=$1 AND available_seats >= $2`, booking.TripID, booking.Passengers)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id=$1)`, booking.TripID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientSeats
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, user_id, trip_id, trip_package_id, accommodation_id, status, total_price, passengers, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		booking.ID, booking.UserID, booking.TripID, booking.TripPackageID, booking.AccommodationID,
		booking.Status, booking.TotalPrice, booking.Passengers, booking.SpecialRequests).
		Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const bookingColumns = `b.id, b.user_id, b.trip_id, b.trip_package_id, b.accommodation_id, b.status, b.total_price, b.passengers, b.special_requests, b.created_at, b.updated_at`

const bookingJoinQuery = `SELECT ` + bookingColumns + `,
	t.id, t.destination_id, t.name, t.description, t.departure_date, t.return_date, t.available_seats, t.created_at, t.updated_at,
	d.id, d.name, d.type, d.description, d.image_url, d.distance, d.travel_time, d.created_at, d.updated_at,
	p.id, p.trip_id, p.seat_class_id, p.name, p.description, p.price, p.features, p.max_capacity,
	s.id, s.name, s.description, s.amenities,
	a.id, a.destination_id, a.name, a.description, a.image_url, a.type, a.price, a.rating, a.amenities, a.max_occupancy, a.created_at, a.updated_at
	FROM bookings b
	JOIN trips t ON t.id = b.trip_id
	JOIN destinations d ON d.id = t.destination_id
	JOIN trip_packages p ON p.id = b.trip_package_id
	JOIN seat_classes s ON s.id = p.seat_class_id
	LEFT JOIN accommodations a ON a.id = b.accommodation_id`

func (r *PGBookingRepository) GetForUser(ctx context.Context, id, userID string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, bookingJoinQuery+` WHERE b.id=$1 AND b.user_id=$2`, id, userID)
	b, err := scanJoinedBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListForUser(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error) {
	query := bookingJoinQuery + ` WHERE b.user_id=$1`
	args := []any{userID}
	if status != nil {
		query += ` AND b.status=$2`
		args = append(args, *status)
	}
	query += ` ORDER BY t.departure_date, b.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanJoinedBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2
		RETURNING id, user_id, trip_id, trip_package_id, accommodation_id, status, total_price, passengers, special_requests, created_at, updated_at`, status, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The status predicate makes concurrent cancels release the seats at
	// most once; the loser falls through to the re-read below.
	row := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 AND status <> $1
		RETURNING id, user_id, trip_id, trip_package_id, accommodation_id, status, total_price, passengers, special_requests, created_at, updated_at`,
		domain.BookingStatusCancelled, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var current domain.Booking
			err := scanBooking(tx.QueryRow(ctx, `SELECT id, user_id, trip_id, trip_package_id, accommodation_id, status, total_price, passengers, special_requests, created_at, updated_at
				FROM bookings WHERE id=$1`, id), &current)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, domain.ErrNotFound
				}
				return nil, err
			}
			return &current, nil
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `UPDATE trips SET available_seats = available_seats + $2, updated_at = now() WHERE id=$1`,
		b.TripID, b.Passengers); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBooking(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.UserID, &b.TripID, &b.TripPackageID, &b.AccommodationID, &b.Status, &b.TotalPrice, &b.Passengers, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt)
}

func scanJoinedBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var t domain.Trip
	var d domain.Destination
	var p domain.TripPackage
	var s domain.SeatClass

	// Accommodation side of the LEFT JOIN, all nullable.
	var aID, aDestID, aName, aDesc, aImg *string
	var aType *domain.AccommodationType
	var aPrice *int64
	var aRating *float64
	var aAmenities []string
	var aMaxOcc *int
	var aCreated, aUpdated *time.Time

	if err := row.Scan(
		&b.ID, &b.UserID, &b.TripID, &b.TripPackageID, &b.AccommodationID, &b.Status, &b.TotalPrice, &b.Passengers, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt,
		&t.ID, &t.DestinationID, &t.Name, &t.Description, &t.DepartureDate, &t.ReturnDate, &t.AvailableSeats, &t.CreatedAt, &t.UpdatedAt,
		&d.ID, &d.Name, &d.Type, &d.Description, &d.ImageURL, &d.Distance, &d.TravelTime, &d.CreatedAt, &d.UpdatedAt,
		&p.ID, &p.TripID, &p.SeatClassID, &p.Name, &p.Description, &p.Price, &p.Features, &p.MaxCapacity,
		&s.ID, &s.Name, &s.Description, &s.Amenities,
		&aID, &aDestID, &aName, &aDesc, &aImg, &aType, &aPrice, &aRating, &aAmenities, &aMaxOcc, &aCreated, &aUpdated,
	); err != nil {
		return nil, err
	}

	t.Destination = &d
	p.SeatClass = &s
	b.Trip = &t
	b.TripPackage = &p
	if aID != nil {
		b.Accommodation = &domain.Accommodation{
			ID:            *aID,
			DestinationID: *aDestID,
			Name:          *aName,
			Description:   *aDesc,
			ImageURL:      *aImg,
			Type:          *aType,
			Price:         *aPrice,
			Rating:        *aRating,
			Amenities:     aAmenities,
			MaxOccupancy:  *aMaxOcc,
			CreatedAt:     *aCreated,
			UpdatedAt:     *aUpdated,
		}
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)

package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/astrotravel/spaceport/internal/kafka"
	"github.com/astrotravel/spaceport/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	ListBookings(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error)
	GetBooking(ctx context.Context, userID, id string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*domain.Booking, error)
	ChangeStatus(ctx context.Context, userID, id string, target domain.BookingStatus) (*domain.Booking, error)
}

type Cache interface {
	InvalidateTrips(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	trips              repository.TripRepository
	accommodations     repository.AccommodationRepository
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	logger             *logrus.Logger
}

type CreateBookingInput struct {
	TripID          string  `json:"tripId"`
	TripPackageID   string  `json:"tripPackageId"`
	AccommodationID *string `json:"accommodationId"`
	Passengers      int     `json:"passengers"`
	SpecialRequests string  `json:"specialRequests"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	trips repository.TripRepository,
	accommodations repository.AccommodationRepository,
	cache Cache,
	producer Producer,
	eventsTopic string,
	logger *logrus.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		trips:          trips,
		accommodations: accommodations,
		cache:          cache,
		producer:       producer,
		eventsTopic:    eventsTopic,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) ListBookings(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.bookings.ListForUser(ctx, userID, status)
}

func (s *BookingService) GetBooking(ctx context.Context, userID, id string) (*domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.bookings.GetForUser(ctx, id, userID)
}

func (s *BookingService) CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.Passengers <= 0 {
		return nil, errors.New("passengers must be positive")
	}

	pkg, err := s.trips.GetPackage(ctx, input.TripPackageID)
	if err != nil {
		return nil, fmt.Errorf("trip package: %w", err)
	}
	trip, err := s.trips.GetByID(ctx, input.TripID)
	if err != nil {
		return nil, fmt.Errorf("trip: %w", err)
	}

	// A stale accommodation id is dropped rather than failing the booking;
	// the charge is then trip-only.
	var accommodation *domain.Accommodation
	accommodationID := input.AccommodationID
	if accommodationID != nil {
		accommodation, err = s.accommodations.GetByID(ctx, *accommodationID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			s.logger.WithField("accommodation_id", *accommodationID).Warn("accommodation not found, booking without it")
			accommodation = nil
			accommodationID = nil
		}
	}

	booking := &domain.Booking{
		ID:              uuid.NewString(),
		UserID:          userID,
		TripID:          input.TripID,
		TripPackageID:   input.TripPackageID,
		AccommodationID: accommodationID,
		Status:          domain.BookingStatusPending,
		Passengers:      input.Passengers,
		SpecialRequests: input.SpecialRequests,
		TotalPrice:      domain.Quote(pkg, trip, accommodation, input.Passengers),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateTrips(ctx)
	}
	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) ChangeStatus(ctx context.Context, userID, id string, target domain.BookingStatus) (*domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if !target.Valid() {
		return nil, fmt.Errorf("unknown booking status %q", target)
	}

	current, err := s.bookings.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// Repeated cancellation is a no-op; seats are only returned once.
	if target == domain.BookingStatusCancelled && current.Status == domain.BookingStatusCancelled {
		return current, nil
	}
	if !domain.CanTransition(current.Status, target) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current.Status, target)
	}

	var updated *domain.Booking
	if target == domain.BookingStatusCancelled {
		updated, err = s.bookings.Cancel(ctx, id)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			_ = s.cache.InvalidateTrips(ctx)
		}
	} else {
		updated, err = s.bookings.UpdateStatus(ctx, id, target)
		if err != nil {
			return nil, err
		}
	}

	s.publish(ctx, "booking_"+strings.ToLower(string(target)), updated)
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		TripID:     booking.TripID,
		Status:     booking.Status,
		Passengers: booking.Passengers,
		TotalPrice: booking.TotalPrice,
		OccurredAt: booking.UpdatedAt,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.ID, event); err != nil {
		s.logger.WithField("booking_id", booking.ID).WithError(err).Warn("failed to publish booking event")
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			s.logger.WithField("booking_id", booking.ID).WithError(err).Warn("failed to publish notification")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)

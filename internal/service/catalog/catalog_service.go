package catalog

import (
	"context"

	"github.com/astrotravel/spaceport/internal/domain"
	"github.com/astrotravel/spaceport/internal/repository"
)

type CatalogUseCase interface {
	ListDestinations(ctx context.Context, filter repository.DestinationFilter) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id string) (*domain.Destination, error)
	ListTrips(ctx context.Context, filter repository.TripFilter) ([]domain.Trip, error)
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
	ListAccommodations(ctx context.Context, filter repository.AccommodationFilter) ([]domain.Accommodation, error)
	GetAccommodation(ctx context.Context, id string) (*domain.Accommodation, error)
}

type Cache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
	GetTrips(ctx context.Context) ([]domain.Trip, error)
	SetTrips(ctx context.Context, trips []domain.Trip) error
}

type CatalogService struct {
	destinations   repository.DestinationRepository
	trips          repository.TripRepository
	accommodations repository.AccommodationRepository
	cache          Cache
}

func NewCatalogService(
	destinations repository.DestinationRepository,
	trips repository.TripRepository,
	accommodations repository.AccommodationRepository,
	cache Cache,
) *CatalogService {
	return &CatalogService{
		destinations:   destinations,
		trips:          trips,
		accommodations: accommodations,
		cache:          cache,
	}
}

func (s *CatalogService) ListDestinations(ctx context.Context, filter repository.DestinationFilter) ([]domain.Destination, error) {
	// Only the unfiltered listing is cached.
	cacheable := filter == (repository.DestinationFilter{})
	if cacheable && s.cache != nil {
		if cached, err := s.cache.GetDestinations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	destinations, err := s.destinations.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if cacheable && s.cache != nil {
		_ = s.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}

func (s *CatalogService) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	return s.destinations.GetByID(ctx, id)
}

func (s *CatalogService) ListTrips(ctx context.Context, filter repository.TripFilter) ([]domain.Trip, error) {
	cacheable := filter.Destination == "" && filter.DepartsOn == nil && filter.MinSeats == 0
	if cacheable && s.cache != nil {
		if cached, err := s.cache.GetTrips(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trips, err := s.trips.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if cacheable && s.cache != nil {
		_ = s.cache.SetTrips(ctx, trips)
	}
	return trips, nil
}

func (s *CatalogService) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

func (s *CatalogService) ListAccommodations(ctx context.Context, filter repository.AccommodationFilter) ([]domain.Accommodation, error) {
	return s.accommodations.List(ctx, filter)
}

func (s *CatalogService) GetAccommodation(ctx context.Context, id string) (*domain.Accommodation, error) {
	return s.accommodations.GetByID(ctx, id)
}

var _ CatalogUseCase = (*CatalogService)(nil)

package domain

import "time"

type DestinationType string

const (
	DestinationSpaceStation    DestinationType = "SPACE_STATION"
	DestinationOrbitalHotel    DestinationType = "ORBITAL_HOTEL"
	DestinationLunarBase       DestinationType = "LUNAR_BASE"
	DestinationMarsColony      DestinationType = "MARS_COLONY"
	DestinationAsteroidOutpost DestinationType = "ASTEROID_OUTPOST"
)

type Destination struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        DestinationType `json:"type"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	// Distance from Earth in light minutes.
	Distance int `json:"distance"`
	// TravelTime in hours.
	TravelTime int       `json:"travelTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Populated on detail reads.
	Trips          []Trip          `json:"trips,omitempty"`
	Accommodations []Accommodation `json:"accommodations,omitempty"`
}

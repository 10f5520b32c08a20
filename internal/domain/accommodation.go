package domain

import "time"

type AccommodationType string

const (
	AccommodationStandardCabin    AccommodationType = "STANDARD_CABIN"
	AccommodationLuxuryPod        AccommodationType = "LUXURY_POD"
	AccommodationZeroGChamber     AccommodationType = "ZERO_G_CHAMBER"
	AccommodationVIPSuite         AccommodationType = "VIP_SUITE"
	AccommodationResearchQuarters AccommodationType = "RESEARCH_QUARTERS"
)

// Accommodation is lodging at a destination, priced per night.
type Accommodation struct {
	ID            string            `json:"id"`
	DestinationID string            `json:"destinationId"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"imageUrl"`
	Type          AccommodationType `json:"type"`
	Price         int64             `json:"price"`
	Rating        float64           `json:"rating"`
	Amenities     []string          `json:"amenities"`
	MaxOccupancy  int               `json:"maxOccupancy"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`

	Destination *Destination `json:"destination,omitempty"`
}

package domain

import "time"

type Trip struct {
	ID             string    `json:"id"`
	DestinationID  string    `json:"destinationId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DepartureDate  time.Time `json:"departureDate"`
	ReturnDate     time.Time `json:"returnDate"`
	AvailableSeats int       `json:"availableSeats"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Destination *Destination  `json:"destination,omitempty"`
	Packages    []TripPackage `json:"tripPackages,omitempty"`
}

type SeatClass struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// TripPackage is a priced tier of a trip. Price is per passenger for the
// whole trip, not per night.
type TripPackage struct {
	ID          string   `json:"id"`
	TripID      string   `json:"tripId"`
	SeatClassID string   `json:"seatClassId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Features    []string `json:"features"`
	MaxCapacity int      `json:"maxCapacity"`

	SeatClass *SeatClass `json:"seatClass,omitempty"`
}

package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// transitions is the explicit table of legal status moves. COMPLETED and
// CANCELLED are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	TripID          string        `json:"tripId"`
	TripPackageID   string        `json:"tripPackageId"`
	AccommodationID *string       `json:"accommodationId"`
	Status          BookingStatus `json:"status"`
	TotalPrice      int64         `json:"totalPrice"`
	Passengers      int           `json:"passengers"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	Trip          *Trip          `json:"trip,omitempty"`
	TripPackage   *TripPackage   `json:"tripPackage,omitempty"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
}

package domain

import "time"

// Nights returns the number of accommodation nights covered by a trip,
// rounding partial days up.
func Nights(departure, ret time.Time) int {
	if !ret.After(departure) {
		return 0
	}
	d := ret.Sub(departure)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// Quote computes the total price of a booking. The package price is charged
// per passenger; the accommodation price is charged per night for the whole
// party, not per passenger. Accommodation cost is zero unless both the
// accommodation and the trip are present.
func Quote(pkg *TripPackage, trip *Trip, accommodation *Accommodation, passengers int) int64 {
	total := pkg.Price * int64(passengers)
	if accommodation != nil && trip != nil {
		total += accommodation.Price * int64(Nights(trip.DepartureDate, trip.ReturnDate))
	}
	return total
}

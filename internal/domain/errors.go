package domain

import "errors"

var (
	// ErrNotFound covers both genuinely missing records and records the
	// caller does not own. Ownership violations are reported as missing so
	// booking ids cannot be probed across accounts.
	ErrNotFound = errors.New("not found")

	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientSeats = errors.New("not enough available seats")
)

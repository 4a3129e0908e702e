package reservation

import "errors"

var (
	// ErrInvalidInput signals a create request failing presence checks.
	ErrInvalidInput = errors.New("invalid reservation input")

	// ErrGoalkeeperNotFound signals a booking against an unknown goalkeeper.
	ErrGoalkeeperNotFound = errors.New("goalkeeper not found")

	// ErrReservationNotFound signals a status update against an unknown
	// reservation.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNotAllowed signals an actor touching a reservation that is not
	// theirs.
	ErrNotAllowed = errors.New("reservation does not belong to actor")

	// ErrInvalidTransition signals a status change the actor's role may not
	// perform from the reservation's current status, including any change
	// out of a terminal status.
	ErrInvalidTransition = errors.New("invalid status transition")
)
